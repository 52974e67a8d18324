package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"petsy/internal/models"
	"petsy/internal/services"
)

func TestRescueService_SubmitRequest(t *testing.T) {
	mockRepo := new(MockRescueRepository)
	service := services.NewRescueService(mockRepo, nil)

	rescue := &models.RescueRequest{
		PetType:    "Dog",
		ConditionR: "Injured leg",
		LocationR:  "Central Park",
		PinR:       "2000",
		PhoneR:     "0412345678",
	}

	mockRepo.On("Create", mock.Anything, rescue).Return(nil).Once()
	err := service.SubmitRequest(context.Background(), rescue)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Persistence failures propagate to the caller.
	mockRepo.On("Create", mock.Anything, rescue).Return(fmt.Errorf("write failed")).Once()
	err = service.SubmitRequest(context.Background(), rescue)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create rescue request")
	mockRepo.AssertExpectations(t)
}

func TestAccountService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAccountService(mockRepo)

	user := &models.User{
		Fname:    "Jo",
		Lname:    "Do",
		Email:    "jo@do.com",
		Password: "secret1",
	}

	mockRepo.On("Create", mock.Anything, user).Return(nil).Once()
	err := service.RegisterUser(context.Background(), user)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Create", mock.Anything, user).Return(fmt.Errorf("duplicate key")).Once()
	err = service.RegisterUser(context.Background(), user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register user")
	mockRepo.AssertExpectations(t)
}
