// Package scoring computes multi-factor sustainability scores and carbon
// estimates for realized itineraries.
package scoring

import (
	"strings"

	"ecotour/data"
	"ecotour/models"
)

// Input carries everything the scorer needs about a realized itinerary.
type Input struct {
	Destination         string
	Days                int
	TransportPreference models.TransportMode
	Activities          []models.Activity
	Accommodation       string
	TotalDistanceKm     float64
}

// Scorer computes a SustainabilityResult for a realized itinerary.
type Scorer interface {
	Score(in Input) models.SustainabilityResult
}

// DefaultScorer is the production implementation. It is stateless and safe
// for concurrent use.
type DefaultScorer struct{}

// Per-mode transport sustainability scores.
var transportScores = map[models.TransportMode]float64{
	models.TransportWalk:   100,
	models.TransportTrain:  85,
	models.TransportBus:    80,
	models.TransportCar:    40,
	models.TransportFlight: 20,
}

const unknownTransportScore = 50.0

// Accommodation sustainability scores by type.
var accommodationScores = map[string]float64{
	"eco_hotel": 90,
	"camping":   95,
	"hostel":    80,
	"airbnb":    75,
	"hotel":     60,
	"resort":    30,
	"lodge":     85,
}

const defaultAccommodationScore = 60.0

// Local engagement factors per activity type; unknown types score the
// 0.5 baseline.
var localEngagementFactors = map[string]float64{
	"cooking_class":     0.95,
	"homestay_visit":    0.90,
	"local_tour":        0.85,
	"market_visit":      0.80,
	"cultural_workshop": 0.85,
	"museum":            0.60,
	"resort_activity":   0.20,
	"tourist_spot":      0.40,
}

const defaultLocalEngagementFactor = 0.5

var localEngagementKeywords = []string{
	"local", "cooking", "homestay", "market", "cultural", "workshop",
}

// Activity types considered alternatives to mainstream tourist spots.
var alternativeActivityTypes = map[string]bool{
	"local_tour":        true,
	"cultural_workshop": true,
	"homestay_visit":    true,
	"market_visit":      true,
}

// Fixed weights for the total score.
var scoringWeights = struct {
	Transport       float64
	Accommodation   float64
	Activity        float64
	LocalEngagement float64
	Overtourism     float64
}{0.30, 0.20, 0.20, 0.20, 0.10}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Score computes the five sub-scores, the weighted total, the carbon total
// and a deterministic explanation.
func (s *DefaultScorer) Score(in Input) models.SustainabilityResult {
	breakdown := models.ScoreBreakdown{
		TransportScore:       transportScore(in.Activities, in.TransportPreference, in.TotalDistanceKm),
		AccommodationScore:   accommodationScore(in.Accommodation, in.Days),
		ActivityScore:        activityScore(in.Activities, in.Destination),
		LocalEngagementScore: localEngagementScore(in.Activities),
		OvertourismScore:     overtourismMitigationScore(in.Destination, in.Activities, in.Days),
	}

	totalScore := breakdown.TransportScore*scoringWeights.Transport +
		breakdown.AccommodationScore*scoringWeights.Accommodation +
		breakdown.ActivityScore*scoringWeights.Activity +
		breakdown.LocalEngagementScore*scoringWeights.LocalEngagement +
		breakdown.OvertourismScore*scoringWeights.Overtourism
	totalScore = clamp(totalScore, 0, 100)

	totalCarbon := carbonFootprint(in.Activities, in.Accommodation, in.Days)

	return models.SustainabilityResult{
		TotalScore:    totalScore,
		Breakdown:     breakdown,
		TotalCarbonKg: totalCarbon,
		Explanation:   explain(breakdown, totalScore, totalCarbon),
	}
}

// transportScore averages per-activity transport scores and penalizes
// high-carbon preferences on long hauls.
func transportScore(activities []models.Activity, preference models.TransportMode, totalDistanceKm float64) float64 {
	if len(activities) == 0 {
		return 50.0
	}

	var sum float64
	for _, a := range activities {
		if score, ok := transportScores[a.Transport]; ok {
			sum += score
		} else {
			sum += unknownTransportScore
		}
	}
	score := sum / float64(len(activities))

	if totalDistanceKm > 500 {
		switch preference {
		case models.TransportFlight:
			score *= 0.6
		case models.TransportCar:
			score *= 0.7
		}
	}

	return clamp(score, 0, 100)
}

func accommodationScore(accommodationType string, days int) float64 {
	score, ok := accommodationScores[strings.ToLower(accommodationType)]
	if !ok {
		score = defaultAccommodationScore
	}

	// Slight bonus for longer stays (less daily impact).
	if days >= 7 {
		score *= 1.05
	} else if days <= 2 {
		score *= 0.95
	}

	return clamp(score, 0, 100)
}

func activityScore(activities []models.Activity, destination string) float64 {
	if len(activities) == 0 {
		return 50.0
	}

	overtourism := data.OvertourismIndex(destination)

	var sum float64
	for _, a := range activities {
		activityType := strings.ToLower(a.Type)
		factor, ok := localEngagementFactors[activityType]
		if !ok {
			factor = defaultLocalEngagementFactor
		}
		score := factor * 100

		// High overtourism destinations favor local engagement over
		// mainstream tourist spots.
		if overtourism > 7.0 {
			switch activityType {
			case "cooking_class", "local_tour", "cultural_workshop":
				score *= 1.1
			case "tourist_spot":
				score *= 0.7
			}
		}
		sum += score
	}

	return clamp(sum/float64(len(activities)), 0, 100)
}

func localEngagementScore(activities []models.Activity) float64 {
	if len(activities) == 0 {
		return 50.0
	}

	local := 0
	for _, a := range activities {
		activityType := strings.ToLower(a.Type)
		for _, keyword := range localEngagementKeywords {
			if strings.Contains(activityType, keyword) {
				local++
				break
			}
		}
	}

	return clamp(float64(local)/float64(len(activities))*100, 0, 100)
}

func overtourismMitigationScore(destination string, activities []models.Activity, days int) float64 {
	score := 100.0 - data.OvertourismIndex(destination)*10

	// Off-peak heuristic bonus; there is no date-based logic.
	score *= 1.05

	if days >= 5 {
		score *= 1.1
	}

	alternatives := 0
	for _, a := range activities {
		if alternativeActivityTypes[strings.ToLower(a.Type)] {
			alternatives++
		}
	}
	if alternatives > 0 {
		score *= 1.0 + float64(alternatives)/float64(len(activities))*0.2
	}

	return clamp(score, 0, 100)
}

// carbonFootprint aggregates transport, accommodation-night and activity
// emissions. The result is never clamped.
func carbonFootprint(activities []models.Activity, accommodationType string, days int) float64 {
	var total float64

	for _, a := range activities {
		if a.DistanceKm > 0 {
			total += data.CarbonForTransport(string(a.Transport), a.DistanceKm)
		}
	}

	total += data.AccommodationCarbon(accommodationType) * float64(days)

	for _, a := range activities {
		total += data.ActivityCarbon(a.Type)
	}

	return total
}
