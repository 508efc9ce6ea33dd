package data

import "ecotour/models"

// ActivityOption is one bookable activity at a destination.
type ActivityOption struct {
	Name          string
	DurationHours float64
	Location      string
}

// Destination activity database, keyed by city then category.
var activityDatabase = map[string]map[models.ActivityCategory][]ActivityOption{
	"Paris": {
		models.CategoryNature: {
			{Name: "Seine River Walk", DurationHours: 2.0, Location: "Along Seine"},
			{Name: "Jardin des Plantes", DurationHours: 3.0, Location: "Latin Quarter"},
			{Name: "Bois de Boulogne", DurationHours: 4.0, Location: "West Paris"},
		},
		models.CategoryCulture: {
			{Name: "Louvre Museum", DurationHours: 3.0, Location: "Central Paris"},
			{Name: "Musée d'Orsay", DurationHours: 2.5, Location: "Left Bank"},
			{Name: "Montmartre Tour", DurationHours: 3.0, Location: "North Paris"},
			{Name: "Notre-Dame", DurationHours: 1.5, Location: "Île de la Cité"},
		},
		models.CategoryLocal: {
			{Name: "Local Market Visit", DurationHours: 2.0, Location: "Marais"},
			{Name: "Café Experience", DurationHours: 2.0, Location: "Throughout Paris"},
			{Name: "Local Bistro", DurationHours: 2.0, Location: "Various"},
		},
		models.CategoryFood: {
			{Name: "Cooking Class", DurationHours: 3.0, Location: "Central Paris"},
			{Name: "Street Food Tour", DurationHours: 2.0, Location: "Marais"},
			{Name: "Wine Tasting", DurationHours: 2.0, Location: "Left Bank"},
		},
	},
	"Tokyo": {
		models.CategoryNature: {
			{Name: "Meiji Shrine Forest Walk", DurationHours: 2.0, Location: "Shibuya"},
			{Name: "Ueno Park", DurationHours: 2.5, Location: "Ueno"},
			{Name: "Cherry Blossom Walk", DurationHours: 2.0, Location: "Multiple locations"},
		},
		models.CategoryCulture: {
			{Name: "Traditional Tea Ceremony", DurationHours: 2.0, Location: "Asakusa"},
			{Name: "Senso-ji Temple", DurationHours: 2.0, Location: "Asakusa"},
			{Name: "Tsukiji Market Tour", DurationHours: 2.5, Location: "Central Tokyo"},
			{Name: "Craft Workshop", DurationHours: 3.0, Location: "Various"},
		},
		models.CategoryAdventure: {
			{Name: "Sumo Tournament", DurationHours: 3.0, Location: "Ryogoku"},
			{Name: "Martial Arts Class", DurationHours: 2.0, Location: "Central Tokyo"},
		},
		models.CategoryLocal: {
			{Name: "Izakaya Experience", DurationHours: 2.0, Location: "Various"},
			{Name: "Onsen (Hot Spring)", DurationHours: 2.0, Location: "Various"},
		},
	},
	"Barcelona": {
		models.CategoryCulture: {
			{Name: "Gaudi Architecture Tour", DurationHours: 3.0, Location: "Central Barcelona"},
			{Name: "Park Güell", DurationHours: 2.5, Location: "Gràcia"},
			{Name: "Gothic Quarter Tour", DurationHours: 2.5, Location: "Gothic Quarter"},
			{Name: "Sagrada Familia", DurationHours: 2.0, Location: "Eixample"},
		},
		models.CategoryNature: {
			{Name: "Beach Walk", DurationHours: 2.0, Location: "Barceloneta"},
			{Name: "Montjuïc Gardens", DurationHours: 2.5, Location: "Montjuïc"},
		},
		models.CategoryLocal: {
			{Name: "La Boqueria Market", DurationHours: 2.0, Location: "Ramblas"},
			{Name: "Tapas Tour", DurationHours: 3.0, Location: "Old Town"},
		},
		models.CategoryAdventure: {
			{Name: "Beach Sports", DurationHours: 2.0, Location: "Barceloneta Beach"},
		},
	},
	"Bangkok": {
		models.CategoryCulture: {
			{Name: "Wat Pho Temple", DurationHours: 2.0, Location: "Old City"},
			{Name: "Grand Palace", DurationHours: 2.0, Location: "Old City"},
			{Name: "Floating Market", DurationHours: 3.0, Location: "Outside Bangkok"},
			{Name: "Traditional Massage", DurationHours: 2.0, Location: "Various"},
		},
		models.CategoryLocal: {
			{Name: "Cooking Class", DurationHours: 3.0, Location: "Central Bangkok"},
			{Name: "Local Food Tour", DurationHours: 2.5, Location: "Various"},
			{Name: "Street Food Exploration", DurationHours: 2.0, Location: "Night Markets"},
		},
		models.CategoryAdventure: {
			{Name: "Muay Thai Class", DurationHours: 2.0, Location: "Central Bangkok"},
			{Name: "Tuk Tuk Night Tour", DurationHours: 2.0, Location: "Various"},
		},
		models.CategoryNature: {
			{Name: "Erawan National Park", DurationHours: 4.0, Location: "Outside Bangkok"},
		},
	},
}

// ActivitiesFor returns the per-category activity options for a destination.
// Unknown destinations return an empty map.
func ActivitiesFor(destination string) map[models.ActivityCategory][]ActivityOption {
	return activityDatabase[destination]
}
