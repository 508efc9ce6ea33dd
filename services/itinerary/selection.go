package itinerary

import (
	"math/rand"

	"ecotour/data"
	"ecotour/models"
)

// Per-day activity cap applied on top of the day target.
const maxActivitiesPerDay = 5

// selectActivities picks the activity pool for a trip. The first two slots of
// each day favor the traveler's top declared interests; remaining slots are
// filled from all categories at the destination, deduplicated by name within
// the day. Transport per activity is biased toward low-carbon modes when the
// sustainability fraction exceeds 0.5.
func selectActivities(rng *rand.Rand, destination string, days int, interests []models.ActivityCategory, sustainabilityFraction float64) []models.Activity {
	available := data.ActivitiesFor(destination)
	if len(available) == 0 {
		return nil
	}

	// Stable category order so runs are reproducible for a seeded source.
	categories := orderedCategories(available)

	dayTarget := 4 + days/2
	if dayTarget > maxActivitiesPerDay {
		dayTarget = maxActivitiesPerDay
	}

	var selected []models.Activity
	for day := 0; day < days; day++ {
		var dayActivities []models.Activity
		seen := make(map[string]bool)

		for _, interest := range topInterests(interests) {
			options := available[interest]
			if len(options) == 0 {
				continue
			}
			option := options[rng.Intn(len(options))]
			transport := pickInterestTransport(rng, sustainabilityFraction)
			distance := 1 + rng.Float64()*9
			dayActivities = append(dayActivities, newActivity(interest, option, transport, distance))
			seen[option.Name] = true
		}

		// Fill remaining slots with random activities from all categories.
		var pool []models.Activity
		for _, category := range categories {
			for _, option := range available[category] {
				transport := pickFillTransport(rng, sustainabilityFraction)
				distance := 1 + rng.Float64()*14
				pool = append(pool, newActivity(category, option, transport, distance))
			}
		}

		dayActivities = fillFromPool(rng, pool, seen, dayActivities, dayTarget)

		if len(dayActivities) > dayTarget {
			dayActivities = dayActivities[:dayTarget]
		}
		selected = append(selected, dayActivities...)
	}

	return selected
}

// fillFromPool draws random pool activities until the target count is reached
// or every distinct name has been seen. The pool is deduplicated by name first
// so the unseen-name bound holds even if two categories share an activity name.
func fillFromPool(rng *rand.Rand, pool []models.Activity, seen map[string]bool, current []models.Activity, target int) []models.Activity {
	var unique []models.Activity
	names := make(map[string]bool, len(pool))
	for _, a := range pool {
		if names[a.Name] {
			continue
		}
		names[a.Name] = true
		unique = append(unique, a)
	}

	for len(current) < target && len(seen) < len(unique) {
		candidate := unique[rng.Intn(len(unique))]
		if seen[candidate.Name] {
			continue
		}
		seen[candidate.Name] = true
		current = append(current, candidate)
	}
	return current
}

func newActivity(category models.ActivityCategory, option data.ActivityOption, transport models.TransportMode, distanceKm float64) models.Activity {
	return models.Activity{
		Category:         category,
		Type:             string(category),
		Name:             option.Name,
		Location:         option.Location,
		DurationHours:    option.DurationHours,
		Transport:        transport,
		DistanceKm:       distanceKm,
		CarbonEmissionKg: data.CarbonForTransport(string(transport), distanceKm),
	}
}

// topInterests returns at most the first two declared interests.
func topInterests(interests []models.ActivityCategory) []models.ActivityCategory {
	if len(interests) > 2 {
		return interests[:2]
	}
	return interests
}

func pickInterestTransport(rng *rand.Rand, sustainabilityFraction float64) models.TransportMode {
	if sustainabilityFraction > 0.5 {
		return choose(rng, models.TransportWalk, models.TransportBus)
	}
	return choose(rng, models.TransportCar, models.TransportBus)
}

func pickFillTransport(rng *rand.Rand, sustainabilityFraction float64) models.TransportMode {
	if sustainabilityFraction > 0.5 {
		return choose(rng, models.TransportWalk, models.TransportBus, models.TransportTrain)
	}
	return models.TransportCar
}

func choose(rng *rand.Rand, modes ...models.TransportMode) models.TransportMode {
	return modes[rng.Intn(len(modes))]
}

func orderedCategories(available map[models.ActivityCategory][]data.ActivityOption) []models.ActivityCategory {
	ordered := []models.ActivityCategory{
		models.CategoryNature,
		models.CategoryCulture,
		models.CategoryAdventure,
		models.CategoryLocal,
		models.CategoryFood,
	}
	var present []models.ActivityCategory
	for _, category := range ordered {
		if len(available[category]) > 0 {
			present = append(present, category)
		}
	}
	return present
}
