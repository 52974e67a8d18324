package repositories

import (
	"context"

	"petsy/internal/models"
)

// PetRepository defines the interface for pet data access.
type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	GetByID(ctx context.Context, id string) (*models.Pet, error)
	// UpdateAdopter sets the pet's adoptedBy field to the adopter's
	// email and returns the updated pet. A missing pet is ErrNotFound.
	UpdateAdopter(ctx context.Context, id, adopterEmail string) (*models.Pet, error)
	Count(ctx context.Context) (int64, error)
}
