package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"petsy/internal/models"
)

const petCollection = "pet_data"

// MongoPetRepository is a MongoDB implementation of PetRepository.
type MongoPetRepository struct {
	coll *mongo.Collection
}

// NewMongoPetRepository creates a new instance of MongoPetRepository.
func NewMongoPetRepository(db *mongo.Database) *MongoPetRepository {
	return &MongoPetRepository{
		coll: db.Collection(petCollection),
	}
}

// Create inserts a new pet document. Used by seeding only; pets are
// otherwise created out of band.
func (r *MongoPetRepository) Create(ctx context.Context, pet *models.Pet) error {
	if pet.ID == "" {
		pet.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, pet); err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

// GetByID retrieves a pet by its document id.
func (r *MongoPetRepository) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	var pet models.Pet
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&pet); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("pet with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pet by ID %s: %w", id, err)
	}
	return &pet, nil
}

// UpdateAdopter sets the pet's adoptedBy field and returns the updated
// document. Two concurrent adoptions of the same pet are not
// serialized; the last write wins.
func (r *MongoPetRepository) UpdateAdopter(ctx context.Context, id, adopterEmail string) (*models.Pet, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var pet models.Pet
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"adoptedBy": adopterEmail}},
		opts,
	).Decode(&pet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("pet with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update adopter for pet %s: %w", id, err)
	}
	return &pet, nil
}

// Count returns the number of pet documents.
func (r *MongoPetRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count pets: %w", err)
	}
	return n, nil
}
