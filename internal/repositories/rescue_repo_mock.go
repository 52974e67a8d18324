package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"petsy/internal/models"
)

// MockRescueRepository is an in-memory implementation of RescueRepository.
type MockRescueRepository struct {
	rescues map[string]models.RescueRequest
	mu      sync.RWMutex
}

// NewMockRescueRepository creates a new instance of MockRescueRepository.
func NewMockRescueRepository() *MockRescueRepository {
	return &MockRescueRepository{
		rescues: make(map[string]models.RescueRequest),
	}
}

// Create adds a new rescue request.
func (r *MockRescueRepository) Create(_ context.Context, rescue *models.RescueRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rescue.ID == "" {
		rescue.ID = uuid.New().String()
	}
	r.rescues[rescue.ID] = *rescue
	return nil
}

// Len reports the number of stored rescue requests.
func (r *MockRescueRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rescues)
}
