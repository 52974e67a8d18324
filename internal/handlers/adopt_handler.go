package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"petsy/internal/services"
)

// PetID accepts either a JSON string or a bare number, since JSON
// clients send the pet id both ways. Form bodies decode it as a plain
// string.
type PetID string

func (p *PetID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*p = PetID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = PetID(s)
	return nil
}

// AdoptRequest represents the adoption form body.
type AdoptRequest struct {
	Email    string `json:"email" form:"email" validate:"required,form_email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	PetID    PetID  `json:"petId" form:"petId" validate:"required"`
}

// Inline scripts returned to the browser; the frontend pages rely on
// the alert-and-redirect behavior, including the 200 status on an
// authentication miss.
const (
	invalidCredentialsScript = "<script>alert('Invalid email or password'); window.location='/adopt';</script>"
	adoptionSuccessScript    = "<script>alert('Pet adopted successfully'); window.location='/adopt';</script>"
)

// AdoptHandler handles HTTP requests for pet adoptions.
type AdoptHandler struct {
	service  *services.AdoptionService
	validate *validator.Validate
}

// NewAdoptHandler creates a new AdoptHandler.
func NewAdoptHandler(service *services.AdoptionService) *AdoptHandler {
	return &AdoptHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the adoption routes with the Fiber app.
func (h *AdoptHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/adopt", h.HandleAdopt)
}

// HandleAdopt validates the submitted credentials and pet id, then runs
// the adoption through the service.
func (h *AdoptHandler) HandleAdopt(c *fiber.Ctx) error {
	var req AdoptRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing adopt request body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(failureReason(err))
	}

	pet, err := h.service.Adopt(c.Context(), req.Email, req.Password, string(req.PetID))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.Status(fiber.StatusOK).SendString(invalidCredentialsScript)
		}
		log.Printf("Error processing adoption for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).SendString(adoptionErrorMessage(err))
	}

	log.Printf("Pet %d adopted by %s", pet.PetID, req.Email)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusFound).SendString(adoptionSuccessScript)
}

// adoptionErrorMessage maps an adoption stage error to the message sent
// with the 500 response.
func adoptionErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrFindingUser):
		return "Error finding user"
	case errors.Is(err, services.ErrUpdatingPet):
		return "Error updating pet with adopter"
	case errors.Is(err, services.ErrUpdatingUser):
		return "Error updating user with adopted pet"
	}
	return "Error processing adoption"
}
