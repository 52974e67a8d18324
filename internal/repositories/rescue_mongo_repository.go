package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"petsy/internal/models"
)

const rescueCollection = "rescue_data"

// MongoRescueRepository is a MongoDB implementation of RescueRepository.
type MongoRescueRepository struct {
	coll *mongo.Collection
}

// NewMongoRescueRepository creates a new instance of MongoRescueRepository.
func NewMongoRescueRepository(db *mongo.Database) *MongoRescueRepository {
	return &MongoRescueRepository{
		coll: db.Collection(rescueCollection),
	}
}

// Create inserts a new rescue request document.
func (r *MongoRescueRepository) Create(ctx context.Context, rescue *models.RescueRequest) error {
	if rescue.ID == "" {
		rescue.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, rescue); err != nil {
		return fmt.Errorf("failed to create rescue request: %w", err)
	}
	return nil
}
