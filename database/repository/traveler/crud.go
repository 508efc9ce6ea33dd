package travelerRepo

import (
	"context"
	"time"

	"ecotour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert stores a traveler profile, replacing any existing profile with the same ID.
func (r *mongoTravelerRepo) Upsert(ctx context.Context, profile models.TravelerProfile) error {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": profile.ID}, profile, opts)
	return err
}

// GetByID returns a traveler profile by its ID.
func (r *mongoTravelerRepo) GetByID(ctx context.Context, id string) (*models.TravelerProfile, error) {
	var profile models.TravelerProfile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetAll returns every registered traveler profile.
func (r *mongoTravelerRepo) GetAll(ctx context.Context) ([]models.TravelerProfile, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.TravelerProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// DeleteByID removes a traveler profile by ID.
func (r *mongoTravelerRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrTravelerNotFound
	}
	return nil
}
