package itinerary

import (
	"math/rand"
	"testing"

	"ecotour/models"
)

func TestSelectActivities(t *testing.T) {
	interests := []models.ActivityCategory{models.CategoryCulture, models.CategoryNature}

	t.Run("UnknownDestination", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		if got := selectActivities(rng, "Atlantis", 3, interests, 0.8); got != nil {
			t.Errorf("Expected nil for unmapped destination, got %v", got)
		}
	})

	t.Run("PerDayCap", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		activities := selectActivities(rng, "Paris", 4, interests, 0.8)
		if len(activities) == 0 {
			t.Fatal("Expected activities for Paris")
		}
		if len(activities) > 4*maxActivitiesPerDay {
			t.Errorf("Expected at most %d activities over 4 days, got %d", 4*maxActivitiesPerDay, len(activities))
		}
	})

	t.Run("HighSustainabilityAvoidsCars", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		activities := selectActivities(rng, "Tokyo", 3, interests, 0.9)
		for _, a := range activities {
			switch a.Transport {
			case models.TransportWalk, models.TransportBus, models.TransportTrain:
			default:
				t.Errorf("Expected low-carbon transport for %s, got %s", a.Name, a.Transport)
			}
		}
	})

	t.Run("LowSustainabilityUsesRoadTransport", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		activities := selectActivities(rng, "Tokyo", 3, interests, 0.2)
		for _, a := range activities {
			if a.Transport != models.TransportCar && a.Transport != models.TransportBus {
				t.Errorf("Expected car or bus for %s, got %s", a.Name, a.Transport)
			}
		}
	})

	t.Run("CarbonAttached", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		activities := selectActivities(rng, "Barcelona", 2, interests, 0.2)
		for _, a := range activities {
			if a.DistanceKm <= 0 {
				t.Errorf("Expected positive distance for %s, got %v", a.Name, a.DistanceKm)
			}
			if a.Transport == models.TransportCar && a.CarbonEmissionKg <= 0 {
				t.Errorf("Expected positive car emissions for %s", a.Name)
			}
		}
	})

	t.Run("ReproducibleForSeed", func(t *testing.T) {
		first := selectActivities(rand.New(rand.NewSource(99)), "Paris", 3, interests, 0.8)
		second := selectActivities(rand.New(rand.NewSource(99)), "Paris", 3, interests, 0.8)
		if len(first) != len(second) {
			t.Fatalf("Expected identical runs for one seed, got %d and %d activities", len(first), len(second))
		}
		for i := range first {
			if first[i].Name != second[i].Name || first[i].Transport != second[i].Transport {
				t.Errorf("Run diverged at index %d: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}

func TestFillFromPool(t *testing.T) {
	duplicated := []models.Activity{
		{Name: "Market Walk", Transport: models.TransportWalk},
		{Name: "Market Walk", Transport: models.TransportBus},
		{Name: "River Tour", Transport: models.TransportWalk},
	}

	t.Run("TerminatesWithDuplicateNames", func(t *testing.T) {
		// Only two distinct names exist, so a target of five must still return.
		rng := rand.New(rand.NewSource(1))
		got := fillFromPool(rng, duplicated, map[string]bool{}, nil, 5)
		if len(got) != 2 {
			t.Errorf("Expected the two distinct activities, got %v", got)
		}
	})

	t.Run("NoDuplicateNamesSelected", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			got := fillFromPool(rng, duplicated, map[string]bool{}, nil, 3)
			names := make(map[string]bool)
			for _, a := range got {
				if names[a.Name] {
					t.Fatalf("Duplicate name %q selected for seed %d", a.Name, seed)
				}
				names[a.Name] = true
			}
		}
	})

	t.Run("RespectsAlreadySeen", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		seen := map[string]bool{"Market Walk": true}
		got := fillFromPool(rng, duplicated, seen, nil, 5)
		if len(got) != 1 || got[0].Name != "River Tour" {
			t.Errorf("Expected only the unseen activity, got %v", got)
		}
	})
}

func TestTopInterests(t *testing.T) {
	all := []models.ActivityCategory{
		models.CategoryCulture,
		models.CategoryNature,
		models.CategoryFood,
	}
	if got := topInterests(all); len(got) != 2 {
		t.Errorf("Expected first two interests, got %v", got)
	}
	if got := topInterests(all[:1]); len(got) != 1 {
		t.Errorf("Expected single interest passthrough, got %v", got)
	}
	if got := topInterests(nil); len(got) != 0 {
		t.Errorf("Expected empty passthrough, got %v", got)
	}
}
