package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hwright/contactform/internal/domain"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ContactFormRequest defines the DTO for the contact-form submission.
// The length bounds match the contactform table columns.
type ContactFormRequest struct {
	Name    string `form:"name" validate:"required,max=64"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"required,max=64"`
	Message string `form:"message" validate:"required"`
}

// fieldErrors maps a failed validation to per-field messages keyed by the
// lowercase field name, for rendering next to the form inputs.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "The submission could not be processed."
		return out
	}

	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			out["name"] = requiredOrTooLong(fe, "Name", domain.MaxNameLength)
		case "Email":
			if fe.Tag() == "required" {
				out["email"] = "Email is required."
			} else {
				out["email"] = "Enter a valid email address."
			}
		case "Subject":
			out["subject"] = requiredOrTooLong(fe, "Subject", domain.MaxSubjectLength)
		case "Message":
			out["message"] = "Message is required."
		}
	}
	return out
}

func requiredOrTooLong(fe validator.FieldError, label string, max int) string {
	if fe.Tag() == "required" {
		return label + " is required."
	}
	return fmt.Sprintf("%s must be at most %d characters.", label, max)
}
