package services

import (
	"context"
	"fmt"
	"log"

	"petsy/internal/models"
	"petsy/internal/repositories"
	"petsy/pkg/rabbitmq"
)

// RescueService handles business logic for rescue requests.
type RescueService struct {
	rescueRepo repositories.RescueRepository
	mqClient   *rabbitmq.Client
}

// NewRescueService creates a new RescueService.
func NewRescueService(rescueRepo repositories.RescueRepository, mqClient *rabbitmq.Client) *RescueService {
	return &RescueService{
		rescueRepo: rescueRepo,
		mqClient:   mqClient,
	}
}

// SubmitRequest saves a new rescue request. Requests are immutable once
// stored and have no link to the adoption flow.
func (s *RescueService) SubmitRequest(ctx context.Context, rescue *models.RescueRequest) error {
	if err := s.rescueRepo.Create(ctx, rescue); err != nil {
		return fmt.Errorf("failed to create rescue request: %w", err)
	}

	if s.mqClient != nil {
		payload := map[string]interface{}{
			"petType":  rescue.PetType,
			"location": rescue.LocationR,
			"phone":    rescue.PhoneR,
		}
		if err := s.mqClient.PublishEvent("rescue.created", payload); err != nil {
			log.Printf("Warning: Failed to publish rescue event: %v", err)
		}
	}

	return nil
}
