package ports

import (
	"context"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// AuthService authenticates credentials and issues session tokens.
type AuthService interface {
	// Login verifies email+password and returns a signed token with the
	// sanitized user. An unknown email and a wrong password both fail with
	// domain.ErrInvalidCredentials so the response never reveals which.
	Login(ctx context.Context, email, password string) (string, *domain.PublicUser, error)
}
