package travelerRepo

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"ecotour/models"
)

// ErrTravelerNotFound is returned by the in-memory registry for unknown IDs.
var ErrTravelerNotFound = errors.New("traveler not found")

type memoryTravelerRepo struct {
	mu       sync.RWMutex
	profiles map[string]models.TravelerProfile
}

// NewMemoryTravelerRepo returns a process-local TravelerRepository. Entries
// live from process start to process end with no eviction.
func NewMemoryTravelerRepo() TravelerRepository {
	return &memoryTravelerRepo{
		profiles: make(map[string]models.TravelerProfile),
	}
}

func (r *memoryTravelerRepo) Upsert(_ context.Context, profile models.TravelerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if existing, ok := r.profiles[profile.ID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.profiles[profile.ID] = profile
	return nil
}

func (r *memoryTravelerRepo) GetByID(_ context.Context, id string) (*models.TravelerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, ErrTravelerNotFound
	}
	return &profile, nil
}

func (r *memoryTravelerRepo) GetAll(_ context.Context) ([]models.TravelerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]models.TravelerProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].ID < profiles[j].ID
	})
	return profiles, nil
}

func (r *memoryTravelerRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[id]; !ok {
		return ErrTravelerNotFound
	}
	delete(r.profiles, id)
	return nil
}
