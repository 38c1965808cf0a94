package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
	"github.com/usermgmt/user-management-api/internal/security"
)

func newTestUserService(repo ports.UserRepository, cache ports.UserCache) *UserService {
	return NewUserService(repo, cache, zerolog.Nop())
}

func strPtr(s string) *string { return &s }

func mustRegister(t *testing.T, svc *UserService, email, name, password string) *domain.PublicUser {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Email:    email,
		Name:     name,
		Password: password,
	})
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", email, err)
	}
	return user
}

func TestUserService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, nil)

	user := mustRegister(t, svc, "a@b.com", "Al", "Password1")

	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Email != "a@b.com" || user.Name != "Al" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.Before(user.CreatedAt) {
		t.Fatalf("bad timestamps: created=%v updated=%v", user.CreatedAt, user.UpdatedAt)
	}

	stored, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "Password1" || stored.PasswordHash == "" {
		t.Fatalf("password not hashed: %q", stored.PasswordHash)
	}
	if !security.CheckPassword("Password1", stored.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	// Email uniqueness is case-sensitive: A@b.com and a@b.com are distinct.
	repo := newStubUserRepo()
	svc := newTestUserService(repo, nil)

	mustRegister(t, svc, "a@b.com", "Al", "Password1")

	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Email: "a@b.com", Name: "Bo", Password: "Password2",
	}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Email: "A@b.com", Name: "Bo", Password: "Password2",
	}); err != nil {
		t.Fatalf("different-cased email should register: %v", err)
	}
}

func TestUserService_Get(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, nil)

	created := mustRegister(t, svc, "a@b.com", "Al", "Password1")

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Get_UsesCache(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubUserCache()
	svc := newTestUserService(repo, cache)

	created := mustRegister(t, svc, "a@b.com", "Al", "Password1")

	// First read fills the cache.
	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cache.setCalls != 1 {
		t.Fatalf("expected one cache write, got %d", cache.setCalls)
	}

	// Second read is served from cache even if the repo record vanishes.
	delete(repo.users, created.ID)
	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("cached Get failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("unexpected cached user: %+v", got)
	}
}

func TestUserService_Get_CacheErrorFallsThrough(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubUserCache()
	cache.getErr = errors.New("redis down")
	svc := newTestUserService(repo, cache)

	created := mustRegister(t, svc, "a@b.com", "Al", "Password1")

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get should survive a cache failure: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserService_List_NewestFirst(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, nil)

	now := time.Now().UTC()
	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		repo.users[email] = &domain.User{
			ID:        email,
			Email:     email,
			Name:      "User",
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
			UpdatedAt: now.Add(time.Duration(i) * time.Minute),
		}
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].Email != "c@x.com" || users[2].Email != "a@x.com" {
		t.Fatalf("users not ordered newest first: %+v", users)
	}
}

func TestUserService_Update_PartialPatch(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, nil)

	created := mustRegister(t, svc, "a@b.com", "Al", "Password1")

	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Name: strPtr("Alice")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Alice" {
		t.Fatalf("name not updated: %+v", updated)
	}
	if updated.Email != "a@b.com" {
		t.Fatalf("email changed unexpectedly: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updatedAt did not increase: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("createdAt changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if !security.CheckPassword("Password1", stored.PasswordHash) {
		t.Fatalf("password changed by a name-only patch")
	}
}

func TestUserService_Update_PasswordRehashed(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, nil)

	created := mustRegister(t, svc, "a@b.com", "Al", "Password1")

	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Password: strPtr("Password2")}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.PasswordHash == "Password2" {
		t.Fatalf("password stored unhashed")
	}
	if !security.CheckPassword("Password2", stored.PasswordHash) {
		t.Fatalf("new password does not verify")
	}
	if security.CheckPassword("Password1", stored.PasswordHash) {
		t.Fatalf("old password still verifies")
	}
}

func TestUserService_Update_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, nil)

	mustRegister(t, svc, "a@b.com", "Al", "Password1")
	second := mustRegister(t, svc, "b@b.com", "Bo", "Password1")

	if _, err := svc.Update(context.Background(), second.ID, ports.UpdateUserInput{Email: strPtr("a@b.com")}); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	// Re-submitting the user's own email is not a conflict.
	if _, err := svc.Update(context.Background(), second.ID, ports.UpdateUserInput{
		Email: strPtr("b@b.com"),
		Name:  strPtr("Bob"),
	}); err != nil {
		t.Fatalf("own email should not conflict: %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := newTestUserService(newStubUserRepo(), nil)

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Name: strPtr("X")}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_InvalidatesCache(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubUserCache()
	svc := newTestUserService(repo, cache)

	created := mustRegister(t, svc, "a@b.com", "Al", "Password1")
	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Name: strPtr("Alice")}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != created.ID {
		t.Fatalf("cache not invalidated: %v", cache.invalidated)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubUserCache()
	svc := newTestUserService(repo, cache)

	created := mustRegister(t, svc, "a@b.com", "Al", "Password1")

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("deleted user still found: %v", err)
	}
	if len(cache.invalidated) == 0 {
		t.Fatalf("cache not invalidated on delete")
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for second delete, got %v", err)
	}
}

func TestUserService_Search(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo, nil)

	mustRegister(t, svc, "1@x.com", "Hannah", "Password1")
	mustRegister(t, svc, "2@x.com", "Anna", "Password1")
	mustRegister(t, svc, "3@x.com", "Bob", "Password1")
	mustRegister(t, svc, "4@x.com", "Joanne", "Password1")

	users, err := svc.Search(context.Background(), "ann")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(users), users)
	}
	// Alphabetical; case-sensitive substring match excludes "Anna" (capital A).
	if users[0].Name != "Hannah" || users[1].Name != "Joanne" {
		t.Fatalf("unexpected order or matches: %+v", users)
	}
}
