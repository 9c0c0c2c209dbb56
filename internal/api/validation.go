package api

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// userIDPattern is the accepted shape of a user ID route parameter:
// a bare non-negative integer with no sign, whitespace, or decimals.
var userIDPattern = regexp.MustCompile(`^\d+$`)

// newValidator builds the validator instance used by all handlers, with
// the custom password complexity check registered.
func newValidator() *validator.Validate {
	v := validator.New()
	// Registration failures only happen for nil funcs or empty tags.
	_ = v.RegisterValidation("password", validatePasswordComplexity)
	return v
}

// validatePasswordComplexity enforces the registration password policy:
// minimum 8 characters with at least one lowercase letter, one uppercase
// letter, one digit, and one special (non-alphanumeric) character.
func validatePasswordComplexity(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	return hasLower && hasUpper && hasDigit && hasSpecial
}

// parseUserID validates a route parameter against userIDPattern and parses
// it. The returned message, when non-empty, is surfaced verbatim in the
// validation failure response.
func parseUserID(param string) (int64, string) {
	if !userIDPattern.MatchString(param) {
		return 0, "User ID must be a non-negative integer"
	}
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		// Matched digits but overflowed int64.
		return 0, "User ID must be a non-negative integer"
	}
	return id, ""
}

// validationMessages converts a validator error into the ordered list of
// per-field failure messages surfaced to clients. Messages keep the order
// in which the struct fields were declared and checked.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request payload"}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, messageForFieldError(fe))
	}
	return messages
}

// messageForFieldError maps one field-level validation failure to a
// human-readable message.
func messageForFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "password":
		return "Password must be at least 8 characters and contain a lowercase letter, an uppercase letter, a digit, and a special character"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
