package handlers

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Permissive patterns matching what the registration and rescue forms
// accept: anything shaped like token@token.token, and exactly ten
// digits for phone numbers.
var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// newValidator returns a validator with the form-level rules
// registered: form_email for the loose email shape and phone10 for
// ten-digit phone numbers.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("form_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// failureReason converts a validation error into the plain-text reason
// sent with a 400 response. Missing fields take precedence over shape
// violations, matching the order the forms are checked in.
func failureReason(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid request body"
	}
	for _, e := range verrs {
		if e.Tag() == "required" {
			return "Missing required fields"
		}
	}
	switch verrs[0].Tag() {
	case "form_email":
		return "Invalid email format"
	case "min":
		return "Password must be at least 6 characters long"
	case "phone10":
		return "Invalid phone number format"
	}
	return "Invalid request body"
}
