package data

type cityPair struct {
	a, b string
}

func orderedPair(a, b string) cityPair {
	if a > b {
		a, b = b, a
	}
	return cityPair{a: a, b: b}
}

// Distance between major cities (km) - simplified.
var cityDistances = map[cityPair]float64{
	orderedPair("New York", "Boston"):     350,
	orderedPair("New York", "Washington"): 370,
	orderedPair("London", "Paris"):        350,
	orderedPair("London", "Amsterdam"):    380,
	orderedPair("Paris", "Amsterdam"):     430,
	orderedPair("Tokyo", "Kyoto"):         475,
	orderedPair("Tokyo", "Osaka"):         515,
	orderedPair("Bangkok", "Phuket"):      865,
	orderedPair("Barcelona", "Madrid"):    630,
	orderedPair("Rome", "Venice"):         390,
	orderedPair("Sydney", "Melbourne"):    714,
	orderedPair("Singapore", "Bangkok"):   1065,
	orderedPair("Dubai", "Abu Dhabi"):     140,
	orderedPair("Bali", "Jakarta"):        1610,
}

// DefaultDistanceKm is returned for city pairs absent from the table.
const DefaultDistanceKm = 800.0

// EstimateDistance returns a coarse distance estimate between two cities.
// The lookup is order-independent. This is a bounded approximation, not a
// distance oracle; no geodesic computation is performed.
func EstimateDistance(origin, destination string) float64 {
	if km, ok := cityDistances[orderedPair(origin, destination)]; ok {
		return km
	}
	return DefaultDistanceKm
}
