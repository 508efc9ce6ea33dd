// Package data holds the static environmental reference tables. Every lookup
// is a total function: unknown keys resolve to documented defaults, never errors.
package data

import "strings"

// CO2 emission factors (kg per kilometer).
var carbonFactors = map[string]float64{
	"flight": 0.12,
	"train":  0.021,
	"bus":    0.028,
	"car":    0.15,
	"walk":   0.0,
}

// Accommodation carbon footprint (kg CO2 per night).
var accommodationCarbon = map[string]float64{
	"eco_hotel": 8.5,
	"hotel":     15.0,
	"hostel":    5.5,
	"airbnb":    12.0,
	"resort":    25.0,
	"camping":   2.0,
	"lodge":     10.0,
}

// Overtourism indices (1-10, higher = more overtourism).
var overtourismIndex = map[string]float64{
	"Venice":     9.5,
	"Barcelona":  8.5,
	"Paris":      7.5,
	"Rome":       8.0,
	"Amsterdam":  8.2,
	"Tokyo":      7.0,
	"New York":   7.8,
	"London":     7.0,
	"Bangkok":    7.5,
	"Bali":       8.0,
	"Dubai":      6.5,
	"Miami":      6.0,
	"Sydney":     5.5,
	"Berlin":     6.0,
	"Prague":     7.5,
	"Copenhagen": 5.5,
	"Stockholm":  5.0,
	"Zurich":     4.5,
	"Vienna":     6.5,
}

// Activity carbon footprint (kg CO2 per activity).
var activityCarbon = map[string]float64{
	"nature_hiking":        0.0,
	"nature_wildlife_tour": 2.5,
	"nature_safari":        8.0,
	"culture_museum":       0.5,
	"culture_local_tour":   1.0,
	"culture_cooking_class": 0.3,
	"adventure_skydiving":   5.0,
	"adventure_rock_climbing": 0.2,
	"adventure_kayaking":    0.5,
	"local_market":          0.0,
	"local_homestay":        0.0,
	"food_street_food":      0.1,
	"food_fine_dining":      1.5,
	"food_farm_to_table":    0.2,
}

const (
	defaultAccommodationCarbon = 12.0
	defaultOvertourismIndex    = 5.0
	defaultActivityCarbon      = 0.5
)

// CarbonForTransport returns the CO2 emissions in kg for traveling the given
// distance with the given mode. Unknown modes emit nothing.
func CarbonForTransport(mode string, distanceKm float64) float64 {
	return carbonFactors[strings.ToLower(mode)] * distanceKm
}

// AccommodationCarbon returns the per-night CO2 footprint for an accommodation type.
func AccommodationCarbon(accommodationType string) float64 {
	if carbon, ok := accommodationCarbon[strings.ToLower(accommodationType)]; ok {
		return carbon
	}
	return defaultAccommodationCarbon
}

// OvertourismIndex returns the 1-10 overtourism rating for a destination.
func OvertourismIndex(destination string) float64 {
	if idx, ok := overtourismIndex[destination]; ok {
		return idx
	}
	return defaultOvertourismIndex
}

// ActivityCarbon returns the CO2 footprint in kg for a single activity type.
func ActivityCarbon(activityType string) float64 {
	if carbon, ok := activityCarbon[strings.ToLower(activityType)]; ok {
		return carbon
	}
	return defaultActivityCarbon
}
