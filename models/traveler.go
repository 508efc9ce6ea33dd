package models

import "time"

// TravelerProfile describes a traveler for group matching. Re-submission with
// the same ID overwrites the stored profile; there are no merge semantics.
type TravelerProfile struct {
	ID                      string             `bson:"id" json:"id" binding:"required"`
	Name                    string             `bson:"name" json:"name" binding:"required"`
	Destination             string             `bson:"destination" json:"destination"`
	TripDays                int                `bson:"tripDays" json:"tripDays"`
	SustainabilityScoreMin  float64            `bson:"sustainabilityScoreMin" json:"sustainabilityScoreMin"`
	Interests               []ActivityCategory `bson:"interests" json:"interests"`
	MaxGroupSize            int                `bson:"maxGroupSize" json:"maxGroupSize"`
	TransportPreference     TransportMode      `bson:"transportPreference" json:"transportPreference"`
	Budget                  float64            `bson:"budget" json:"budget"`
	ProfileVector           []float64          `bson:"profileVector,omitempty" json:"profileVector,omitempty"`
	CreatedAt               time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GroupMatch is a recommended travel group. Derived per request, never stored.
type GroupMatch struct {
	TravelerIDs          []string           `json:"travelerIds"`
	SimilarityScore      float64            `json:"similarityScore"`
	RecommendedGroupSize int                `json:"recommendedGroupSize"`
	CommonInterests      []ActivityCategory `json:"commonInterests"`
}

// TravelerMatch is a single ranked candidate for a reference traveler.
type TravelerMatch struct {
	TravelerID      string             `json:"travelerId"`
	Name            string             `json:"name"`
	Destination     string             `json:"destination"`
	SimilarityScore float64            `json:"similarityScore"`
	CommonInterests []ActivityCategory `json:"commonInterests"`
}
