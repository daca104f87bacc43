package validation

import (
	"fmt"
	"regexp"
	"strings"

	"webeat/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	return nil
}

// ValidateMode checks that mode is present and one of the known feature
// areas. The storage layer keeps mode as a free string; unknown values are
// rejected here at the boundary.
func ValidateMode(mode string) error {
	if strings.TrimSpace(mode) == "" {
		return ValidationError{Field: "mode", Message: "mode is required"}
	}
	if !models.ValidMode(mode) {
		return ValidationError{Field: "mode", Message: "mode must be one of dating, wedding, family"}
	}
	return nil
}

// ValidateTitle checks a feature record title
func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ValidationError{Field: "title", Message: "title is required"}
	}
	if len(title) > 255 {
		return ValidationError{Field: "title", Message: "title must be at most 255 characters"}
	}
	return nil
}
