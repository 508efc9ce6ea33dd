package itinerary

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"ecotour/models"
	"ecotour/services/scoring"
)

// stubEnricher records calls and returns a canned narrative or error.
type stubEnricher struct {
	narrative string
	err       error
	calls     int
}

func (s *stubEnricher) EnrichItinerary(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.narrative, s.err
}

func newTestGenerator(enricher *stubEnricher) *DefaultItineraryService {
	return &DefaultItineraryService{
		Scorer:     &scoring.DefaultScorer{},
		Enricher:   enricher,
		Rand:       rand.New(rand.NewSource(42)),
		LLMTimeout: time.Second,
	}
}

func parisTrip(days int) models.TripInput {
	return models.TripInput{
		Origin:              "London",
		Destination:         "Paris",
		Days:                days,
		TransportPreference: models.TransportTrain,
		Interests:           []models.ActivityCategory{models.CategoryCulture, models.CategoryNature},
	}
}

func TestGenerateItinerary(t *testing.T) {
	t.Run("RejectsNonPositiveDays", func(t *testing.T) {
		svc := newTestGenerator(&stubEnricher{})
		if _, err := svc.GenerateItinerary(context.Background(), parisTrip(0), false); err == nil {
			t.Error("Expected error for zero-day trip")
		}
	})

	t.Run("DayPlanShape", func(t *testing.T) {
		svc := newTestGenerator(&stubEnricher{})
		itinerary, err := svc.GenerateItinerary(context.Background(), parisTrip(4), false)
		if err != nil {
			t.Fatalf("GenerateItinerary failed: %v", err)
		}

		if itinerary.ID == "" {
			t.Error("Expected a generated ID")
		}
		if len(itinerary.Days) != 4 {
			t.Fatalf("Expected 4 day plans, got %d", len(itinerary.Days))
		}
		for _, day := range itinerary.Days {
			if len(day.Activities) > maxScheduledPerDay {
				t.Errorf("Day %d schedules %d activities, cap is %d", day.Day, len(day.Activities), maxScheduledPerDay)
			}
			if day.TotalCarbonKg < day.AccommodationCarbon {
				t.Errorf("Day %d total carbon %v below accommodation carbon %v", day.Day, day.TotalCarbonKg, day.AccommodationCarbon)
			}
			for _, a := range day.Activities {
				if a.Time == "" || a.Activity == "" {
					t.Errorf("Day %d has an incomplete scheduled activity: %+v", day.Day, a)
				}
			}
		}
	})

	t.Run("ShortTripUsesEcoHotel", func(t *testing.T) {
		// London-Paris is 350 km, so the provisional distance score clears 70.
		svc := newTestGenerator(&stubEnricher{})
		itinerary, err := svc.GenerateItinerary(context.Background(), parisTrip(3), false)
		if err != nil {
			t.Fatalf("GenerateItinerary failed: %v", err)
		}
		for _, day := range itinerary.Days {
			if day.Accommodation != "eco_hotel" {
				t.Errorf("Expected eco_hotel for a short haul, got %s", day.Accommodation)
			}
		}
	})

	t.Run("UnknownDestinationStillPlans", func(t *testing.T) {
		svc := newTestGenerator(&stubEnricher{})
		input := parisTrip(2)
		input.Destination = "Atlantis"
		itinerary, err := svc.GenerateItinerary(context.Background(), input, false)
		if err != nil {
			t.Fatalf("GenerateItinerary failed: %v", err)
		}
		if len(itinerary.Days) != 2 {
			t.Fatalf("Expected 2 day plans, got %d", len(itinerary.Days))
		}
		for _, day := range itinerary.Days {
			if len(day.Activities) != 0 {
				t.Errorf("Expected no activities for an unmapped destination, got %v", day.Activities)
			}
		}
	})

	t.Run("TemplateFallbackWithoutLLM", func(t *testing.T) {
		enricher := &stubEnricher{narrative: "Should not be used"}
		svc := newTestGenerator(enricher)
		itinerary, err := svc.GenerateItinerary(context.Background(), parisTrip(3), false)
		if err != nil {
			t.Fatalf("GenerateItinerary failed: %v", err)
		}
		if enricher.calls != 0 {
			t.Errorf("Expected no enrichment calls, got %d", enricher.calls)
		}
		if !strings.Contains(itinerary.Title, "Cultural Immersion") {
			t.Errorf("Expected culture template title, got %q", itinerary.Title)
		}
		if !strings.Contains(itinerary.Title, "3-Day Paris") {
			t.Errorf("Expected days and destination in title, got %q", itinerary.Title)
		}
	})

	t.Run("EnrichedNarrative", func(t *testing.T) {
		enricher := &stubEnricher{narrative: "# A Greener Paris\n\nFive slow days along the Seine."}
		svc := newTestGenerator(enricher)
		itinerary, err := svc.GenerateItinerary(context.Background(), parisTrip(5), true)
		if err != nil {
			t.Fatalf("GenerateItinerary failed: %v", err)
		}
		if enricher.calls != 1 {
			t.Errorf("Expected one enrichment call, got %d", enricher.calls)
		}
		if itinerary.Title != "A Greener Paris" {
			t.Errorf("Expected narrative title, got %q", itinerary.Title)
		}
		if itinerary.Description != "Five slow days along the Seine." {
			t.Errorf("Expected narrative description, got %q", itinerary.Description)
		}
	})

	t.Run("EnricherFailureFallsBackToTemplate", func(t *testing.T) {
		enricher := &stubEnricher{err: errors.New("upstream unavailable")}
		svc := newTestGenerator(enricher)
		itinerary, err := svc.GenerateItinerary(context.Background(), parisTrip(3), true)
		if err != nil {
			t.Fatalf("Expected enrichment failure to be swallowed, got %v", err)
		}
		if !strings.Contains(itinerary.Title, "Cultural Immersion") {
			t.Errorf("Expected template fallback title, got %q", itinerary.Title)
		}
	})

	t.Run("EmptyNarrativeFallsBackToTemplate", func(t *testing.T) {
		enricher := &stubEnricher{narrative: "   \n\n  "}
		svc := newTestGenerator(enricher)
		itinerary, err := svc.GenerateItinerary(context.Background(), parisTrip(3), true)
		if err != nil {
			t.Fatalf("GenerateItinerary failed: %v", err)
		}
		if !strings.Contains(itinerary.Title, "Cultural Immersion") {
			t.Errorf("Expected template fallback for blank narrative, got %q", itinerary.Title)
		}
	})
}

func TestGenerateMultiple(t *testing.T) {
	t.Run("RejectsOutOfRangeCounts", func(t *testing.T) {
		svc := newTestGenerator(&stubEnricher{})
		for _, count := range []int{0, 6, -1} {
			if _, err := svc.GenerateMultiple(context.Background(), parisTrip(3), count); err == nil {
				t.Errorf("Expected error for count %d", count)
			}
		}
	})

	t.Run("SortedByScoreDescending", func(t *testing.T) {
		svc := newTestGenerator(&stubEnricher{})
		itineraries, err := svc.GenerateMultiple(context.Background(), parisTrip(4), 5)
		if err != nil {
			t.Fatalf("GenerateMultiple failed: %v", err)
		}
		if len(itineraries) != 5 {
			t.Fatalf("Expected 5 options, got %d", len(itineraries))
		}
		for i := 1; i < len(itineraries); i++ {
			if itineraries[i].Sustainability.TotalScore > itineraries[i-1].Sustainability.TotalScore {
				t.Errorf("Options not sorted descending at index %d", i)
			}
		}
	})

	t.Run("OnlyFirstOptionEnriched", func(t *testing.T) {
		enricher := &stubEnricher{narrative: "Eco Escape\nA calm plan."}
		svc := newTestGenerator(enricher)
		if _, err := svc.GenerateMultiple(context.Background(), parisTrip(3), 3); err != nil {
			t.Fatalf("GenerateMultiple failed: %v", err)
		}
		if enricher.calls != 1 {
			t.Errorf("Expected a single enrichment call across options, got %d", enricher.calls)
		}
	})
}

func TestParseNarrative(t *testing.T) {
	t.Run("TitleAndDescription", func(t *testing.T) {
		title, description, ok := parseNarrative("## Trip Title\nThe description line.\nIgnored trailing line.")
		if !ok || title != "Trip Title" || description != "The description line." {
			t.Errorf("Unexpected parse: %q / %q / %v", title, description, ok)
		}
	})

	t.Run("TitleOnly", func(t *testing.T) {
		title, description, ok := parseNarrative("Just a title")
		if !ok || title != "Just a title" || description != "Just a title" {
			t.Errorf("Expected description to default to title, got %q / %q / %v", title, description, ok)
		}
	})

	t.Run("BlankNarrative", func(t *testing.T) {
		if _, _, ok := parseNarrative("\n  \n"); ok {
			t.Error("Expected blank narrative to fail parsing")
		}
	})

	t.Run("SkipsLeadingBlankLines", func(t *testing.T) {
		title, _, ok := parseNarrative("\n\n* Bullet Title\ndetail")
		if !ok || title != "Bullet Title" {
			t.Errorf("Expected markdown markers stripped, got %q", title)
		}
	})
}

func TestStyleFor(t *testing.T) {
	cases := []struct {
		interests []models.ActivityCategory
		style     string
	}{
		{nil, "eco_focused"},
		{[]models.ActivityCategory{models.CategoryAdventure}, "adventure_focused"},
		{[]models.ActivityCategory{models.CategoryCulture}, "culture_focused"},
		{[]models.ActivityCategory{models.CategoryFood}, "culture_focused"},
		{[]models.ActivityCategory{models.CategoryNature}, "eco_focused"},
	}
	for _, tc := range cases {
		if got := styleFor(tc.interests); got != tc.style {
			t.Errorf("styleFor(%v) = %s, expected %s", tc.interests, got, tc.style)
		}
	}
}
