package intelligence

import (
	"fmt"
	"sort"
	"strings"
)

// BuildItineraryPrompt renders the enrichment prompt for a trip request.
// Weights are listed in sorted key order so the prompt is deterministic.
// A zero budget means the traveler declared none and is left out.
func BuildItineraryPrompt(origin, destination string, days int, transportPreference string, budget float64, sustainabilityWeights map[string]float64, interests []string) string {
	interestsStr := "general sightseeing"
	if len(interests) > 0 {
		interestsStr = strings.Join(interests, ", ")
	}

	budgetLine := ""
	if budget > 0 {
		budgetLine = fmt.Sprintf("- Budget: $%.0f\n", budget)
	}

	keys := make([]string, 0, len(sustainabilityWeights))
	for k := range sustainabilityWeights {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var weights strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&weights, "  - %s: %g\n", k, sustainabilityWeights[k])
	}

	return fmt.Sprintf(`Create a sustainable %d-day itinerary from %s to %s.

Trip Details:
- Origin: %s
- Destination: %s
- Duration: %d days
- Preferred Transport: %s
- Interests: %s
%s
Sustainability Priorities:
%s
Please provide:
1. A day-by-day breakdown with specific times and activities
2. Recommended accommodation types (prefer eco-friendly options)
3. Local, low-carbon transport options
4. Activities that minimize environmental impact and support local communities
5. Brief notes on why each choice is sustainable

Format the response as a structured itinerary with clear sections for each day.`,
		days, origin, destination,
		origin, destination, days, transportPreference, interestsStr,
		budgetLine, weights.String())
}
