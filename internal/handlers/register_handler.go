package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"petsy/internal/models"
	"petsy/internal/services"
)

// RegisterRequest represents the registration form body.
type RegisterRequest struct {
	Fname    string `json:"fname" form:"fname" validate:"required"`
	Lname    string `json:"lname" form:"lname" validate:"required"`
	Age      int    `json:"age" form:"age"`
	Pno      int    `json:"pno" form:"pno"`
	Pin      int    `json:"pin" form:"pin"`
	City     string `json:"city" form:"city"`
	Email    string `json:"email" form:"email" validate:"required,form_email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// RegisterHandler handles the registration page and form submission.
type RegisterHandler struct {
	service  *services.AccountService
	static   *StaticHandler
	validate *validator.Validate
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(service *services.AccountService, static *StaticHandler) *RegisterHandler {
	return &RegisterHandler{
		service:  service,
		static:   static,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the registration routes with the Fiber app.
func (h *RegisterHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleForm)
	router.Post("/", h.HandleRegister)
}

// HandleForm serves the registration form page.
func (h *RegisterHandler) HandleForm(c *fiber.Ctx) error {
	return h.static.ServePage(c, "wtp.html")
}

// HandleRegister validates the submitted form and creates the user,
// redirecting back to the form on success.
func (h *RegisterHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(failureReason(err))
	}

	user := models.User{
		Fname:    req.Fname,
		Lname:    req.Lname,
		Age:      req.Age,
		Pno:      req.Pno,
		Pin:      req.Pin,
		City:     req.City,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.service.RegisterUser(c.Context(), &user); err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error creating user")
	}

	return c.Redirect("/", fiber.StatusFound)
}
