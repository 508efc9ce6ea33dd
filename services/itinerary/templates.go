package itinerary

import (
	"fmt"

	"ecotour/models"
)

// styleTemplate is one deterministic fallback flavor for titles and
// descriptions when LLM enrichment is unavailable.
type styleTemplate struct {
	Title       string
	Description string
}

var styleTemplates = map[string]styleTemplate{
	"eco_focused": {
		Title:       "Sustainable Explorer",
		Description: "Low-carbon activities with emphasis on local culture and nature",
	},
	"adventure_focused": {
		Title:       "Active Adventurer",
		Description: "Mix of adventure activities with moderate carbon footprint",
	},
	"culture_focused": {
		Title:       "Cultural Immersion",
		Description: "Deep cultural exploration with local engagement",
	},
	"relaxation_focused": {
		Title:       "Mindful Retreat",
		Description: "Relaxation and wellness with sustainable practices",
	},
}

const defaultStyle = "eco_focused"

// styleFor maps the traveler's leading interest onto a template style tag.
func styleFor(interests []models.ActivityCategory) string {
	if len(interests) == 0 {
		return defaultStyle
	}
	switch interests[0] {
	case models.CategoryAdventure:
		return "adventure_focused"
	case models.CategoryCulture:
		return "culture_focused"
	case models.CategoryFood, models.CategoryLocal:
		return "culture_focused"
	default:
		return defaultStyle
	}
}

// templateTitle renders the deterministic fallback title and description,
// keyed by destination and style tag.
func templateTitle(style, origin, destination string, days int) (string, string) {
	tmpl, ok := styleTemplates[style]
	if !ok {
		tmpl = styleTemplates[defaultStyle]
	}
	title := fmt.Sprintf("%s: Sustainable %d-Day %s Adventure", tmpl.Title, days, destination)
	description := fmt.Sprintf("%s. Eco-conscious itinerary from %s to %s.", tmpl.Description, origin, destination)
	return title, description
}
