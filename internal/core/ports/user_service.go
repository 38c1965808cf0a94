package ports

import (
	"context"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// RegisterUserInput carries the validated fields for user registration.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
}

// UpdateUserInput is a partial update request; nil fields are not modified.
type UpdateUserInput struct {
	Email    *string
	Name     *string
	Password *string
}

// UserService implements the user CRUD pipeline: business-rule checks,
// password hashing, persistence and sanitization.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.PublicUser, error)
	Get(ctx context.Context, id string) (*domain.PublicUser, error)
	List(ctx context.Context) ([]domain.PublicUser, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.PublicUser, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, name string) ([]domain.PublicUser, error)
}
