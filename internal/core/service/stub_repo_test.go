package service

import (
	"context"
	"sort"
	"strings"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

// stubUserRepo is an in-memory UserRepository honouring the same contract as
// the Mongo implementation, including write-time email uniqueness.
type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Empty() {
		return cloneUser(u), nil
	}
	if patch.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *patch.Email {
				return nil, domain.ErrEmailExists
			}
		}
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	u.UpdatedAt = patch.UpdatedAt
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *stubUserRepo) SearchByName(_ context.Context, name string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if strings.Contains(u.Name, name) {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// stubUserCache records cache traffic for assertions.
type stubUserCache struct {
	entries     map[string]*domain.PublicUser
	invalidated []string
	getErr      error
	setCalls    int
}

func newStubUserCache() *stubUserCache {
	return &stubUserCache{entries: make(map[string]*domain.PublicUser)}
}

func (c *stubUserCache) Get(_ context.Context, id string) (*domain.PublicUser, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[id], nil
}

func (c *stubUserCache) Set(_ context.Context, user *domain.PublicUser) error {
	c.setCalls++
	clone := *user
	c.entries[user.ID] = &clone
	return nil
}

func (c *stubUserCache) Invalidate(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	delete(c.entries, id)
	return nil
}
