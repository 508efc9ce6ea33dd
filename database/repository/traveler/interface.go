package travelerRepo

import (
	"context"

	"ecotour/database"
	"ecotour/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TravelerRepository is the traveler registry. Upsert overwrites any stored
// profile with the same ID; there are no merge semantics.
type TravelerRepository interface {
	Upsert(ctx context.Context, profile models.TravelerProfile) error
	GetByID(ctx context.Context, id string) (*models.TravelerProfile, error)
	GetAll(ctx context.Context) ([]models.TravelerProfile, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoTravelerRepo struct {
	coll *mongo.Collection
}

// NewMongoTravelerRepo returns a new TravelerRepository instance using MongoDB.
func NewMongoTravelerRepo() TravelerRepository {
	db := database.MongoClient.Database("ecotour")
	return &mongoTravelerRepo{
		coll: db.Collection("travelers"),
	}
}
