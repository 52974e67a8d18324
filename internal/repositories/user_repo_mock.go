package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"petsy/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.ID] = *user
	return nil
}

// GetByCredentials returns the user whose email and password both match.
func (r *MockUserRepository) GetByCredentials(_ context.Context, email, password string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
}

// AppendAdoptedPet appends petID to the user's adopted-pet list.
func (r *MockUserRepository) AppendAdoptedPet(_ context.Context, userID string, petID int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", userID, ErrNotFound)
	}
	user.AdoptedPets = append(user.AdoptedPets, petID)
	r.users[userID] = user
	return &user, nil
}

// Len reports the number of stored users.
func (r *MockUserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
