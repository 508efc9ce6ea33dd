package data

// Per-destination sustainable travel tips.
var sustainabilityTips = map[string][]string{
	"Paris": {
		"Use the extensive metro and bus system instead of taxis",
		"Rent a bike for short distances",
		"Visit local markets for farm-to-table meals",
		"Stay in eco-certified hotels in Marais district",
		"Walk along the Seine for free nature experience",
	},
	"Tokyo": {
		"Use the world's best public transport system (trains and subways)",
		"Try local onsen (hot springs) for wellness",
		"Eat at local ramen shops instead of tourist restaurants",
		"Visit temples and gardens in the early morning to avoid crowds",
		"Use coin lockers instead of checking luggage",
	},
	"Barcelona": {
		"Use the metro for efficient transport",
		"Visit Park Güell early morning to avoid overtourism",
		"Shop at La Boqueria market for local produce",
		"Take the beach tram instead of taxis",
		"Eat at local tapas bars in the Gothic Quarter",
	},
	"Bangkok": {
		"Use the BTS Skytrain and MRT for fast, efficient transport",
		"Visit floating markets in the early morning",
		"Eat street food from local vendors",
		"Respect temple etiquette and dress codes",
		"Support local artisans and craft makers",
	},
}

const defaultTipsDestination = "Paris"

// SustainabilityTips returns travel tips for a destination. Unknown
// destinations fall back to the Paris list.
func SustainabilityTips(destination string) []string {
	if tips, ok := sustainabilityTips[destination]; ok {
		return tips
	}
	return sustainabilityTips[defaultTipsDestination]
}
