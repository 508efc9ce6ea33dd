package itinerary

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"ecotour/data"
	"ecotour/models"
	"ecotour/services/intelligence"
	"ecotour/services/scoring"
	"ecotour/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Bounds for multi-option generation.
const (
	MinOptions = 1
	MaxOptions = 5
)

// GenerateItinerary runs the full generation pipeline for one option.
func (s *DefaultItineraryService) GenerateItinerary(ctx context.Context, input models.TripInput, useLLM bool) (*models.Itinerary, error) {
	if input.Days < 1 {
		return nil, fmt.Errorf("trip length must be at least 1 day, got %d", input.Days)
	}

	interests := input.Interests
	if len(interests) == 0 {
		interests = defaultInterests
	}
	weights := input.SustainabilityWeights
	if len(weights) == 0 {
		weights = defaultSustainabilityWeights
	}

	distance := data.EstimateDistance(input.Origin, input.Destination)

	// Provisional distance-sustainability score. Trips beyond 10,000 km
	// would drive it negative; it is clamped to 0 before being used as the
	// activity-selection bias fraction.
	provisionalScore := (1 - distance/10000) * 100
	if provisionalScore > 100 {
		provisionalScore = 100
	}
	if provisionalScore < 0 {
		provisionalScore = 0
	}

	accommodation := "hotel"
	if provisionalScore > 70 {
		accommodation = "eco_hotel"
	}

	s.mu.Lock()
	activities := selectActivities(s.Rand, input.Destination, input.Days, interests, provisionalScore/100)
	dayPlans := make([]models.DayPlan, 0, input.Days)
	for day := 1; day <= input.Days; day++ {
		dayPlans = append(dayPlans, buildDayPlan(s.Rand, day, input.Destination, activities, accommodation))
	}
	s.mu.Unlock()

	sustainability := s.Scorer.Score(scoring.Input{
		Destination:         input.Destination,
		Days:                input.Days,
		TransportPreference: input.TransportPreference,
		Activities:          activities,
		Accommodation:       accommodation,
		TotalDistanceKm:     distance,
	})

	title, description := s.resolveTitle(ctx, input, interests, weights, useLLM)

	return &models.Itinerary{
		ID:                 uuid.New().String(),
		Title:              title,
		Description:        description,
		Days:               dayPlans,
		Sustainability:     sustainability,
		PreferredTransport: input.TransportPreference,
	}, nil
}

// GenerateMultiple produces count independent options sorted by total
// sustainability score descending. Only the first option attempts LLM
// enrichment to bound latency and cost.
func (s *DefaultItineraryService) GenerateMultiple(ctx context.Context, input models.TripInput, count int) ([]models.Itinerary, error) {
	if count < MinOptions || count > MaxOptions {
		return nil, fmt.Errorf("option count must be between %d and %d, got %d", MinOptions, MaxOptions, count)
	}

	itineraries := make([]models.Itinerary, 0, count)
	for i := 0; i < count; i++ {
		option, err := s.GenerateItinerary(ctx, input, i == 0)
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, *option)
	}

	sort.SliceStable(itineraries, func(i, j int) bool {
		return itineraries[i].Sustainability.TotalScore > itineraries[j].Sustainability.TotalScore
	})
	return itineraries, nil
}

// resolveTitle asks the enricher for a narrative and falls back to the
// deterministic template on any failure or absence of a result. Enrichment
// failures are logged, never propagated.
func (s *DefaultItineraryService) resolveTitle(ctx context.Context, input models.TripInput, interests []models.ActivityCategory, weights map[string]float64, useLLM bool) (string, string) {
	style := styleFor(interests)

	if useLLM && s.Enricher != nil {
		enrichCtx := ctx
		if s.LLMTimeout > 0 {
			var cancel context.CancelFunc
			enrichCtx, cancel = context.WithTimeout(ctx, s.LLMTimeout)
			defer cancel()
		}

		interestNames := make([]string, len(interests))
		for i, interest := range interests {
			interestNames[i] = string(interest)
		}
		prompt := intelligence.BuildItineraryPrompt(
			input.Origin, input.Destination, input.Days,
			string(input.TransportPreference), input.Budget, weights, interestNames,
		)

		narrative, err := s.Enricher.EnrichItinerary(enrichCtx, prompt)
		if err != nil {
			utils.GetLogger().Warn("itinerary enrichment failed, using template fallback",
				zap.String("destination", input.Destination), zap.Error(err))
		} else if title, description, ok := parseNarrative(narrative); ok {
			return title, description
		}
	}

	return templateTitle(style, input.Origin, input.Destination, input.Days)
}

// parseNarrative extracts a title and description from a free-form narrative:
// the first non-empty line becomes the title, the next the description.
func parseNarrative(narrative string) (string, string, bool) {
	var title, description string
	for _, line := range strings.Split(narrative, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#*- "))
		if line == "" {
			continue
		}
		if title == "" {
			title = line
			continue
		}
		description = line
		break
	}

	if title == "" {
		return "", "", false
	}
	if description == "" {
		description = title
	}
	return title, description, true
}
