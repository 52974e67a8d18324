package repositories

import (
	"context"

	"petsy/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// GetByCredentials looks up a user whose stored email and password
	// both equal the supplied plaintext values. A miss is ErrNotFound.
	GetByCredentials(ctx context.Context, email, password string) (*models.User, error)
	// AppendAdoptedPet appends petID to the user's adopted-pet list and
	// returns the updated user.
	AppendAdoptedPet(ctx context.Context, userID string, petID int) (*models.User, error)
}
