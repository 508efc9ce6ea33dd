package itinerary

import (
	"math/rand"
	"strings"
	"testing"

	"ecotour/models"
)

func sampleActivities(n int) []models.Activity {
	activities := make([]models.Activity, n)
	for i := range activities {
		activities[i] = models.Activity{
			Name:             string(rune('A' + i)),
			DurationHours:    2,
			Transport:        models.TransportWalk,
			DistanceKm:       2,
			CarbonEmissionKg: 0.5,
		}
	}
	return activities
}

func TestBuildDayPlan(t *testing.T) {
	t.Run("CapAndCarbon", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		plan := buildDayPlan(rng, 1, "Paris", sampleActivities(10), "eco_hotel")

		if plan.Day != 1 {
			t.Errorf("Expected day 1, got %d", plan.Day)
		}
		if len(plan.Activities) == 0 || len(plan.Activities) > maxScheduledPerDay {
			t.Errorf("Expected between 1 and %d activities, got %d", maxScheduledPerDay, len(plan.Activities))
		}
		if plan.AccommodationCarbon != 8.5 {
			t.Errorf("Expected eco_hotel night carbon 8.5, got %v", plan.AccommodationCarbon)
		}
		if plan.TotalCarbonKg < plan.AccommodationCarbon {
			t.Errorf("Total carbon %v below accommodation carbon %v", plan.TotalCarbonKg, plan.AccommodationCarbon)
		}
	})

	t.Run("ScheduleAdvances", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		plan := buildDayPlan(rng, 2, "Paris", sampleActivities(10), "hotel")

		if plan.Activities[0].Time != "09:00" {
			t.Errorf("Expected first activity at 09:00, got %s", plan.Activities[0].Time)
		}
		previous := ""
		for _, a := range plan.Activities {
			if !strings.HasSuffix(a.Time, ":00") {
				t.Errorf("Expected on-the-hour start, got %s", a.Time)
			}
			if previous != "" && a.Time <= previous {
				t.Errorf("Expected strictly increasing start times, got %s after %s", a.Time, previous)
			}
			previous = a.Time
		}
	})

	t.Run("EmptyDrawFallsBack", func(t *testing.T) {
		// A source whose first draws all exceed the retention probability
		// forces the fallback; with only two activities both are kept.
		activities := sampleActivities(2)
		for seed := int64(0); seed < 50; seed++ {
			rng := rand.New(rand.NewSource(seed))
			plan := buildDayPlan(rng, 1, "Paris", activities, "hotel")
			if len(plan.Activities) == 0 {
				t.Fatalf("Expected fallback to keep activities for seed %d", seed)
			}
		}
	})

	t.Run("NoActivities", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		plan := buildDayPlan(rng, 1, "Paris", nil, "hotel")
		if len(plan.Activities) != 0 {
			t.Errorf("Expected empty schedule, got %v", plan.Activities)
		}
		if plan.TotalCarbonKg != plan.AccommodationCarbon {
			t.Errorf("Expected accommodation-only carbon, got %v", plan.TotalCarbonKg)
		}
	})

	t.Run("LocationDefaultsToDestination", func(t *testing.T) {
		activities := sampleActivities(1)
		activities[0].Location = ""
		for seed := int64(0); seed < 10; seed++ {
			plan := buildDayPlan(rand.New(rand.NewSource(seed)), 1, "Kyoto", activities, "hotel")
			for _, a := range plan.Activities {
				if a.Location != "Kyoto" {
					t.Fatalf("Expected destination fallback location, got %s", a.Location)
				}
			}
		}
	})
}
