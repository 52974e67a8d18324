package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"petsy/internal/models"
	"petsy/internal/services"
)

// RescueFormRequest represents the rescue form body.
type RescueFormRequest struct {
	PetType    string `json:"petType" form:"petType" validate:"required"`
	ConditionR string `json:"conditionR" form:"conditionR" validate:"required"`
	LocationR  string `json:"locationR" form:"locationR" validate:"required"`
	PinR       string `json:"pinR" form:"pinR" validate:"required"`
	PhoneR     string `json:"phoneR" form:"phoneR" validate:"required,phone10"`
}

// RescueHandler handles the rescue page and form submission.
type RescueHandler struct {
	service  *services.RescueService
	static   *StaticHandler
	validate *validator.Validate
}

// NewRescueHandler creates a new RescueHandler.
func NewRescueHandler(service *services.RescueService, static *StaticHandler) *RescueHandler {
	return &RescueHandler{
		service:  service,
		static:   static,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the rescue routes with the Fiber app.
func (h *RescueHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/rescue", h.HandleForm)
	router.Post("/rescue", h.HandleSubmit)
}

// HandleForm serves the rescue form page.
func (h *RescueHandler) HandleForm(c *fiber.Ctx) error {
	return h.static.ServePage(c, "rescue.html")
}

// HandleSubmit validates the submitted rescue report and stores it,
// redirecting to the home page on success.
func (h *RescueHandler) HandleSubmit(c *fiber.Ctx) error {
	var req RescueFormRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing rescue request body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(failureReason(err))
	}

	rescue := models.RescueRequest{
		PetType:    req.PetType,
		ConditionR: req.ConditionR,
		LocationR:  req.LocationR,
		PinR:       req.PinR,
		PhoneR:     req.PhoneR,
	}
	if err := h.service.SubmitRequest(c.Context(), &rescue); err != nil {
		log.Printf("Error creating rescue request: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error creating rescue request")
	}

	return c.Redirect("/", fiber.StatusFound)
}
