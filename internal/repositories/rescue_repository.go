package repositories

import (
	"context"

	"petsy/internal/models"
)

// RescueRepository defines the interface for rescue request data access.
type RescueRepository interface {
	Create(ctx context.Context, rescue *models.RescueRequest) error
}
