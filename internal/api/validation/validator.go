package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation failure messages, matching the public API contract
const (
	MsgAllFieldsRequired = "All fields are required"
	MsgInvalidEmail      = "Please provide a valid email address"
)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("contact_email", validateContactEmail)
}

// validateContactEmail checks the minimal address shape the contact form
// accepts: at least one "@" and at least one ".". This is intentionally
// weaker than RFC validation; the form only needs a plausible reply address.
func validateContactEmail(fl validator.FieldLevel) bool {
	email := fl.Field().String()
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// FailureMessage maps validation errors to the single user-facing message
// the API returns. A missing field on any of name/email/message wins over
// a malformed email.
func FailureMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return MsgAllFieldsRequired
	}

	for _, e := range validationErrors {
		if e.Tag() == "required" {
			return MsgAllFieldsRequired
		}
	}
	for _, e := range validationErrors {
		if e.Tag() == "contact_email" {
			return MsgInvalidEmail
		}
	}
	return MsgAllFieldsRequired
}
