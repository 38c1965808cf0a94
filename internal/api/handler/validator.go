package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Failures surface as a domain.ValidationError carrying every violated
// constraint, not just the first.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("passwordchars", hasPasswordChars)
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return domain.NewValidationError(msgs...)
		}
		return err
	}
	return nil
}

// hasPasswordChars enforces the password character classes: at least one
// lowercase letter, one uppercase letter and one digit.
func hasPasswordChars(fl validator.FieldLevel) bool {
	var lower, upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// fieldError converts a single ValidationError into its human-readable
// message. The texts are part of the API contract and must stay stable.
func fieldError(fe validator.FieldError) string {
	switch fe.Field() + "." + fe.Tag() {
	case "Email.required":
		return "Email is required"
	case "Email.email":
		return "Please provide a valid email address"
	case "Name.required":
		return "Name is required"
	case "Name.min":
		return "Name must be at least 2 characters long"
	case "Name.max":
		return "Name cannot exceed 50 characters"
	case "Password.required":
		return "Password is required"
	case "Password.min":
		return "Password must be at least 8 characters long"
	case "Password.max":
		return "Password cannot exceed 72 characters"
	case "Password.passwordchars":
		return "Password must contain at least one lowercase letter, one uppercase letter, and one number"
	case "Term.required":
		return "Search term is required"
	case "Term.max":
		return "Search term cannot exceed 50 characters"
	default:
		return fmt.Sprintf("%s failed validation (%s)", strings.ToLower(fe.Field()), fe.Tag())
	}
}
