package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"petsy/internal/repositories"
)

func newTestApp() (*fiber.App, *repositories.MockPetRepository) {
	petRepo := repositories.NewMockPetRepository()
	app := NewApp(
		repositories.NewMockUserRepository(),
		petRepo,
		repositories.NewMockRescueRepository(),
		nil, // RabbitMQ client
		"./web",
		nil, // MongoDB client
	)
	return app, petRepo
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "not configured", body["mongodb"])
}

func TestSeedPetsOnlyWhenEmpty(t *testing.T) {
	_, petRepo := newTestApp()

	seedPets(petRepo)
	count, err := petRepo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// A non-empty collection is left alone.
	seedPets(petRepo)
	count, err = petRepo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestFaviconShortCircuit(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/favicon.ico", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}
