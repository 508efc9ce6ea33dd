package itinerary

import (
	"fmt"
	"math"
	"math/rand"

	"ecotour/data"
	"ecotour/models"
)

const (
	dayStartHour          = 9
	dayActivityRetention  = 0.4
	maxScheduledPerDay    = 4
	fallbackActivityCount = 3
)

// buildDayPlan assembles one day. Each available activity survives with
// ~40% probability; an empty draw falls back to the first three available
// activities. At most four activities are scheduled, starting at 09:00 and
// advancing by the rounded duration plus one hour.
func buildDayPlan(rng *rand.Rand, day int, destination string, activities []models.Activity, accommodationType string) models.DayPlan {
	var kept []models.Activity
	for _, a := range activities {
		if rng.Float64() < dayActivityRetention {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		kept = activities[:min(len(activities), fallbackActivityCount)]
	}
	if len(kept) > maxScheduledPerDay {
		kept = kept[:maxScheduledPerDay]
	}

	scheduled := make([]models.ScheduledActivity, 0, len(kept))
	hour := dayStartHour
	var activityCarbon float64
	for _, a := range kept {
		scheduled = append(scheduled, models.ScheduledActivity{
			Time:             fmt.Sprintf("%02d:00", hour),
			Activity:         a.Name,
			Location:         locationOrDefault(a.Location, destination),
			Transport:        a.Transport,
			DurationHours:    a.DurationHours,
			CarbonEmissionKg: a.CarbonEmissionKg,
		})
		activityCarbon += a.CarbonEmissionKg
		hour += int(math.Round(a.DurationHours)) + 1
	}

	accommodationCarbon := data.AccommodationCarbon(accommodationType)
	return models.DayPlan{
		Day:                 day,
		Activities:          scheduled,
		Accommodation:       accommodationType,
		AccommodationCarbon: accommodationCarbon,
		TotalCarbonKg:       activityCarbon + accommodationCarbon,
	}
}

func locationOrDefault(location, destination string) string {
	if location == "" {
		return destination
	}
	return location
}
