package ports

import (
	"context"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// UserCache is a read-through cache of sanitized users keyed by id. Only the
// sanitized view is ever cached; password hashes never leave the repository.
// A miss is (nil, nil), not an error.
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.PublicUser, error)
	Set(ctx context.Context, user *domain.PublicUser) error
	Invalidate(ctx context.Context, id string) error
}
