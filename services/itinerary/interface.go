// Package itinerary orchestrates day-by-day trip generation: distance lookup,
// interest-biased activity selection, day-plan assembly, sustainability
// scoring and optional LLM enrichment with a deterministic template fallback.
package itinerary

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"ecotour/models"
	"ecotour/services/intelligence"
	"ecotour/services/scoring"
)

// ItineraryService generates scored itinerary options.
type ItineraryService interface {
	GenerateItinerary(ctx context.Context, input models.TripInput, useLLM bool) (*models.Itinerary, error)
	GenerateMultiple(ctx context.Context, input models.TripInput, count int) ([]models.Itinerary, error)
}

// DefaultItineraryService is the production implementation. Rand is the
// injected random source so tests can reproduce exact day plans; a locked
// source keeps concurrent generation calls safe.
type DefaultItineraryService struct {
	Scorer     scoring.Scorer
	Enricher   intelligence.Enricher
	Rand       *rand.Rand
	LLMTimeout time.Duration

	mu sync.Mutex
}

// NewDefaultItineraryService wires the generator with a time-seeded random
// source and the given collaborators.
func NewDefaultItineraryService(scorer scoring.Scorer, enricher intelligence.Enricher, llmTimeout time.Duration) *DefaultItineraryService {
	return &DefaultItineraryService{
		Scorer:     scorer,
		Enricher:   enricher,
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		LLMTimeout: llmTimeout,
	}
}

// Default sustainability priorities applied when the caller supplies none.
var defaultSustainabilityWeights = map[string]float64{
	"carbon":      0.4,
	"local":       0.3,
	"culture":     0.2,
	"overtourism": 0.1,
}

// Default interests applied when the caller declares none.
var defaultInterests = []models.ActivityCategory{
	models.CategoryCulture,
	models.CategoryNature,
}
