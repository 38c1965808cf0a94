package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for the request pipeline. The HTTP error handler maps each
// one to a status code and client-facing message.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user with this email already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserIDRequired     = errors.New("user id is required")
)

// ValidationError aggregates every constraint violated by a request, not just
// the first. Its message is the comma-joined list of human-readable violations.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}
