package ports

import (
	"context"
	"time"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// UserPatch is a partial update: nil fields are left untouched. UpdatedAt is
// applied only when at least one field is set.
type UserPatch struct {
	Email        *string
	Name         *string
	PasswordHash *string
	UpdatedAt    time.Time
}

// Empty reports whether the patch changes no fields.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.Name == nil && p.PasswordHash == nil
}

// UserRepository defines persistence operations for users.
//
// The storage layer owns the email-uniqueness invariant: any write that would
// duplicate an email fails with domain.ErrEmailExists, atomically with the
// write itself. Read misses return domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindAll returns every user, newest first by creation time.
	FindAll(ctx context.Context) ([]*domain.User, error)
	// Update applies a partial patch. An empty patch performs no write and
	// returns the current record.
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	// Delete removes the user and reports whether a record existed.
	Delete(ctx context.Context, id string) (bool, error)
	// SearchByName returns users whose name contains the given substring
	// (case-sensitive), ordered alphabetically by name.
	SearchByName(ctx context.Context, name string) ([]*domain.User, error)
}
