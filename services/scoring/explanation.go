package scoring

import (
	"fmt"
	"strings"

	"ecotour/models"
)

type dimension struct {
	name  string
	score float64
}

// explain renders the deterministic natural-language explanation for a
// breakdown. Ties between dimensions resolve to the first in the fixed order.
func explain(breakdown models.ScoreBreakdown, totalScore, totalCarbon float64) string {
	var rating, sentiment string
	switch {
	case totalScore >= 85:
		rating = "Excellent Eco-Conscious Choice"
		sentiment = "This itinerary demonstrates strong sustainability commitments."
	case totalScore >= 70:
		rating = "Good Sustainable Travel"
		sentiment = "This itinerary balances travel experience with environmental responsibility."
	case totalScore >= 50:
		rating = "Moderate Environmental Impact"
		sentiment = "Consider adjusting transport or activity choices for lower impact."
	default:
		rating = "High Environmental Impact"
		sentiment = "We recommend choosing alternative transport or activities."
	}

	dimensions := []dimension{
		{"transport", breakdown.TransportScore},
		{"accommodation", breakdown.AccommodationScore},
		{"activities", breakdown.ActivityScore},
		{"local engagement", breakdown.LocalEngagementScore},
		{"overtourism mitigation", breakdown.OvertourismScore},
	}

	strongest, weakest := dimensions[0], dimensions[0]
	for _, d := range dimensions[1:] {
		if d.score > strongest.score {
			strongest = d
		}
		if d.score < weakest.score {
			weakest = d
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\n", rating, sentiment)
	fmt.Fprintf(&b, "Key Metrics:\n- Overall Score: %.1f/100\n- Total Carbon: %.1f kg CO2\n\n", totalScore, totalCarbon)
	fmt.Fprintf(&b, "Breakdown:\n")
	fmt.Fprintf(&b, "- Transport: %.1f/100\n", breakdown.TransportScore)
	fmt.Fprintf(&b, "- Accommodation: %.1f/100\n", breakdown.AccommodationScore)
	fmt.Fprintf(&b, "- Activities: %.1f/100\n", breakdown.ActivityScore)
	fmt.Fprintf(&b, "- Local Engagement: %.1f/100\n", breakdown.LocalEngagementScore)
	fmt.Fprintf(&b, "- Overtourism Mitigation: %.1f/100\n\n", breakdown.OvertourismScore)
	fmt.Fprintf(&b, "Strengths: Your %s choices are excellent for sustainability.\n", strongest.name)
	fmt.Fprintf(&b, "Opportunities: Consider improving %s to increase sustainability.\n\n", weakest.name)
	b.WriteString("Tips to improve your score:\n")
	b.WriteString("1. Use public transport or walking when possible\n")
	b.WriteString("2. Choose eco-friendly accommodations\n")
	b.WriteString("3. Engage with local communities and artisans\n")
	b.WriteString("4. Visit less crowded attractions to reduce overtourism impact\n")
	b.WriteString("5. Offset carbon with verified carbon credit programs")

	return b.String()
}
