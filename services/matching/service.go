package matching

import (
	"context"
	"fmt"

	travelerRepo "ecotour/database/repository/traveler"
	"ecotour/models"
)

// GroupResult is the outcome of a group search for one reference traveler.
type GroupResult struct {
	TravelerID           string                 `json:"travelerId"`
	MatchesFound         int                    `json:"matchesFound"`
	TopMatches           []models.TravelerMatch `json:"topMatches"`
	GroupRecommendations []models.GroupMatch    `json:"groupRecommendations"`
}

// TravelerService manages traveler profiles and group matching.
type TravelerService interface {
	CreateProfile(ctx context.Context, profile models.TravelerProfile) (*models.TravelerProfile, error)
	GetProfile(ctx context.Context, id string) (*models.TravelerProfile, error)
	ListProfiles(ctx context.Context) ([]models.TravelerProfile, error)
	FindGroup(ctx context.Context, travelerID, destination string, minSimilarity float64) (*GroupResult, error)
}

// DefaultTravelerService is the production implementation.
type DefaultTravelerService struct {
	Repo travelerRepo.TravelerRepository
}

// CreateProfile computes the profile vector, attaches it and stores the
// profile. A profile with an existing ID is overwritten.
func (s *DefaultTravelerService) CreateProfile(ctx context.Context, profile models.TravelerProfile) (*models.TravelerProfile, error) {
	interests := make([]string, len(profile.Interests))
	for i, interest := range profile.Interests {
		interests[i] = string(interest)
	}

	profile.ProfileVector = Vectorize(
		profile.SustainabilityScoreMin,
		interests,
		profile.TripDays,
		profile.Budget,
	)

	if err := s.Repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to store traveler profile: %w", err)
	}
	return &profile, nil
}

func (s *DefaultTravelerService) GetProfile(ctx context.Context, id string) (*models.TravelerProfile, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultTravelerService) ListProfiles(ctx context.Context) ([]models.TravelerProfile, error) {
	return s.Repo.GetAll(ctx)
}

// FindGroup ranks other registered travelers against the reference traveler
// and assembles group recommendations: always the best pair, plus a larger
// group when the strongest match is highly compatible.
func (s *DefaultTravelerService) FindGroup(ctx context.Context, travelerID, destination string, minSimilarity float64) (*GroupResult, error) {
	traveler, err := s.Repo.GetByID(ctx, travelerID)
	if err != nil {
		return nil, fmt.Errorf("reference traveler %s: %w", travelerID, err)
	}

	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load travelers: %w", err)
	}

	byID := make(map[string]models.TravelerProfile, len(all))
	var candidates []Candidate
	for _, other := range all {
		if other.ID == travelerID || len(other.ProfileVector) == 0 {
			continue
		}
		if destination != "" && other.Destination != destination && other.Destination != traveler.Destination {
			continue
		}
		byID[other.ID] = other
		candidates = append(candidates, Candidate{ID: other.ID, Vector: other.ProfileVector})
	}

	result := &GroupResult{TravelerID: travelerID}
	if len(candidates) == 0 {
		return result, nil
	}

	matches, err := FindSimilar(traveler.ProfileVector, candidates, minSimilarity, -1)
	if err != nil {
		return nil, err
	}
	result.MatchesFound = len(matches)
	if len(matches) == 0 {
		return result, nil
	}

	for _, m := range matches[:min(len(matches), 5)] {
		other := byID[m.ID]
		result.TopMatches = append(result.TopMatches, models.TravelerMatch{
			TravelerID:      m.ID,
			Name:            other.Name,
			Destination:     other.Destination,
			SimilarityScore: m.Score,
			CommonInterests: commonInterests(traveler.Interests, other.Interests),
		})
	}

	best := matches[0]
	result.GroupRecommendations = append(result.GroupRecommendations, models.GroupMatch{
		TravelerIDs:          []string{travelerID, best.ID},
		SimilarityScore:      best.Score,
		RecommendedGroupSize: 2,
		CommonInterests:      commonInterests(traveler.Interests, byID[best.ID].Interests),
	})

	// A larger group only pays off when the strongest match is already
	// highly compatible.
	if len(matches) >= 2 && best.Score > 0.8 {
		groupVectors := [][]float64{traveler.ProfileVector}
		for _, m := range matches[:2] {
			groupVectors = append(groupVectors, byID[m.ID].ProfileVector)
		}
		size, err := RecommendGroupSize(groupVectors)
		if err != nil {
			return nil, err
		}

		members := matches[:min(len(matches), size-1)]
		ids := []string{travelerID}
		var scoreSum float64
		memberInterests := make(map[models.ActivityCategory]bool)
		for _, m := range members {
			ids = append(ids, m.ID)
			scoreSum += m.Score
			for _, interest := range byID[m.ID].Interests {
				memberInterests[interest] = true
			}
		}

		var shared []models.ActivityCategory
		for _, interest := range traveler.Interests {
			if memberInterests[interest] {
				shared = append(shared, interest)
			}
		}

		result.GroupRecommendations = append(result.GroupRecommendations, models.GroupMatch{
			TravelerIDs:          ids,
			SimilarityScore:      scoreSum / float64(len(members)),
			RecommendedGroupSize: size,
			CommonInterests:      shared,
		})
	}

	return result, nil
}

func commonInterests(a, b []models.ActivityCategory) []models.ActivityCategory {
	inB := make(map[models.ActivityCategory]bool, len(b))
	for _, interest := range b {
		inB[interest] = true
	}
	var common []models.ActivityCategory
	for _, interest := range a {
		if inB[interest] {
			common = append(common, interest)
		}
	}
	return common
}
