package models

// TransportMode enumerates supported transport modes.
type TransportMode string

const (
	TransportFlight TransportMode = "flight"
	TransportTrain  TransportMode = "train"
	TransportBus    TransportMode = "bus"
	TransportCar    TransportMode = "car"
	TransportWalk   TransportMode = "walk"
)

// ActivityCategory enumerates the activity categories travelers can declare
// as interests and that the activity database is keyed by.
type ActivityCategory string

const (
	CategoryNature    ActivityCategory = "nature"
	CategoryCulture   ActivityCategory = "culture"
	CategoryAdventure ActivityCategory = "adventure"
	CategoryLocal     ActivityCategory = "local"
	CategoryFood      ActivityCategory = "food"
)

// Activity is a single selected activity. Immutable once placed into a day plan.
type Activity struct {
	Category         ActivityCategory `bson:"category" json:"category"`
	Type             string           `bson:"type" json:"type"`
	Name             string           `bson:"name" json:"name"`
	Location         string           `bson:"location" json:"location"`
	DurationHours    float64          `bson:"durationHours" json:"durationHours"`
	Transport        TransportMode    `bson:"transport" json:"transport"`
	DistanceKm       float64          `bson:"distanceKm" json:"distanceKm"`
	CarbonEmissionKg float64          `bson:"carbonEmissionKg" json:"carbonEmissionKg"`
}

// ScheduledActivity is an activity placed on a day schedule with a start time.
type ScheduledActivity struct {
	Time             string        `bson:"time" json:"time"`
	Activity         string        `bson:"activity" json:"activity"`
	Location         string        `bson:"location" json:"location"`
	Transport        TransportMode `bson:"transport" json:"transport"`
	DurationHours    float64       `bson:"durationHours" json:"durationHours"`
	CarbonEmissionKg float64       `bson:"carbonEmissionKg" json:"carbonEmissionKg"`
}

// DayPlan is one day of an itinerary. Total carbon is the activity carbon
// plus the accommodation night, so it is never below the accommodation carbon.
type DayPlan struct {
	Day                  int                 `bson:"day" json:"day"`
	Activities           []ScheduledActivity `bson:"activities" json:"activities"`
	Accommodation        string              `bson:"accommodation" json:"accommodation"`
	AccommodationCarbon  float64             `bson:"accommodationCarbonKg" json:"accommodationCarbonKg"`
	TotalCarbonKg        float64             `bson:"totalCarbonKg" json:"totalCarbonKg"`
}

// ScoreBreakdown holds the five sustainability sub-scores, each in [0,100].
type ScoreBreakdown struct {
	TransportScore       float64 `bson:"transportScore" json:"transportScore"`
	AccommodationScore   float64 `bson:"accommodationScore" json:"accommodationScore"`
	ActivityScore        float64 `bson:"activityScore" json:"activityScore"`
	LocalEngagementScore float64 `bson:"localEngagementScore" json:"localEngagementScore"`
	OvertourismScore     float64 `bson:"overtourismScore" json:"overtourismScore"`
}

// SustainabilityResult is the scored outcome for a full itinerary.
// TotalCarbonKg is never clamped.
type SustainabilityResult struct {
	TotalScore    float64        `bson:"totalScore" json:"totalScore"`
	Breakdown     ScoreBreakdown `bson:"breakdown" json:"breakdown"`
	TotalCarbonKg float64        `bson:"totalCarbonKg" json:"totalCarbonKg"`
	Explanation   string         `bson:"explanation" json:"explanation"`
}

// Itinerary is a complete generated trip plan. Never mutated after creation.
type Itinerary struct {
	ID                 string               `bson:"id" json:"id"`
	Title              string               `bson:"title" json:"title"`
	Description        string               `bson:"description" json:"description"`
	Days               []DayPlan            `bson:"days" json:"days"`
	Sustainability     SustainabilityResult `bson:"sustainability" json:"sustainability"`
	PreferredTransport TransportMode        `bson:"preferredTransport" json:"preferredTransport"`
}

// TripInput is the user request for itinerary generation.
type TripInput struct {
	Origin                string             `json:"origin" binding:"required"`
	Destination           string             `json:"destination" binding:"required"`
	Days                  int                `json:"days" binding:"required,min=1"`
	TransportPreference   TransportMode      `json:"transportPreference" binding:"required"`
	Budget                float64            `json:"budget,omitempty"`
	Interests             []ActivityCategory `json:"interests"`
	SustainabilityWeights map[string]float64 `json:"sustainabilityWeights,omitempty"`
}
