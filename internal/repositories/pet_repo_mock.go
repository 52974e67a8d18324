package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"petsy/internal/models"
)

// MockPetRepository is an in-memory implementation of PetRepository.
type MockPetRepository struct {
	pets map[string]models.Pet
	mu   sync.RWMutex
}

// NewMockPetRepository creates a new instance of MockPetRepository.
func NewMockPetRepository() *MockPetRepository {
	return &MockPetRepository{
		pets: make(map[string]models.Pet),
	}
}

// Create adds a new pet.
func (r *MockPetRepository) Create(_ context.Context, pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pet.ID == "" {
		pet.ID = uuid.New().String()
	}
	r.pets[pet.ID] = *pet
	return nil
}

// GetByID returns a pet by its ID.
func (r *MockPetRepository) GetByID(_ context.Context, id string) (*models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pet, ok := r.pets[id]
	if !ok {
		return nil, fmt.Errorf("pet with ID %s: %w", id, ErrNotFound)
	}
	return &pet, nil
}

// UpdateAdopter sets the pet's adoptedBy field.
func (r *MockPetRepository) UpdateAdopter(_ context.Context, id, adopterEmail string) (*models.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pet, ok := r.pets[id]
	if !ok {
		return nil, fmt.Errorf("pet with ID %s: %w", id, ErrNotFound)
	}
	pet.AdoptedBy = adopterEmail
	r.pets[id] = pet
	return &pet, nil
}

// Count reports the number of stored pets.
func (r *MockPetRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.pets)), nil
}
