package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"petsy/internal/models"
	"petsy/internal/repositories"
	"petsy/pkg/rabbitmq"
)

// Adoption errors. The stage sentinels let the handler report which
// step of the adoption failed.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrFindingUser        = errors.New("finding user")
	ErrUpdatingPet        = errors.New("updating pet with adopter")
	ErrUpdatingUser       = errors.New("updating user with adopted pet")
)

// AdoptionService handles business logic for pet adoptions.
type AdoptionService struct {
	userRepo repositories.UserRepository
	petRepo  repositories.PetRepository
	mqClient *rabbitmq.Client
}

// NewAdoptionService creates a new AdoptionService.
func NewAdoptionService(userRepo repositories.UserRepository, petRepo repositories.PetRepository, mqClient *rabbitmq.Client) *AdoptionService {
	return &AdoptionService{
		userRepo: userRepo,
		petRepo:  petRepo,
		mqClient: mqClient,
	}
}

// Adopt authenticates the adopter and records the adoption on both the
// pet and the user, returning the updated pet.
//
// The pet and user writes are two independent operations with no
// transaction: a failure after the pet update leaves the pet marked
// adopted with the user not yet updated, and two concurrent adoptions
// of the same pet are not serialized.
func (s *AdoptionService) Adopt(ctx context.Context, email, password, petID string) (*models.Pet, error) {
	user, err := s.userRepo.GetByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrFindingUser, err)
	}

	pet, err := s.petRepo.UpdateAdopter(ctx, petID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpdatingPet, err)
	}

	if _, err := s.userRepo.AppendAdoptedPet(ctx, user.ID, pet.PetID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpdatingUser, err)
	}

	if s.mqClient != nil {
		payload := map[string]interface{}{
			"petId":     pet.PetID,
			"petName":   pet.PetName,
			"adoptedBy": user.Email,
		}
		if err := s.mqClient.PublishEvent("adoption.created", payload); err != nil {
			log.Printf("Warning: Failed to publish adoption event for pet %d: %v", pet.PetID, err)
		}
	}

	return pet, nil
}
