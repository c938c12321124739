package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"FirstName": "First name",
	"LastName":  "Last name",
	"Email":     "Email",
	"Mobile":    "Mobile number",
	"Age":       "Age",
	"Job":       "Job",
	"ID":        "Job reference",

	"Linkedin":        "LinkedIn profile",
	"ConfirmPassword": "Confirm password",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "letters":
		return fmt.Sprintf("%s: only letters are allowed", label)
	case "mobile10", "mobile_in":
		return fmt.Sprintf("%s: invalid mobile number", label)
	case "simple_email", "email":
		return fmt.Sprintf("%s: invalid email address", label)
	case "linkedin_url":
		return fmt.Sprintf("%s: invalid LinkedIn profile URL", label)
	case "eqfield":
		return fmt.Sprintf("%s: must match %s", label, getFieldLabel(e.Param()))
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
