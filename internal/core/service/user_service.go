package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/usermgmt/user-management-api/internal/metrics"
	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
	"github.com/usermgmt/user-management-api/internal/security"
)

// UserService implements the CRUD pipeline over a UserRepository, with an
// optional read-through cache for lookups by id.
type UserService struct {
	repo   ports.UserRepository
	cache  ports.UserCache
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache ports.UserCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, logger: logger}
}

// Register creates a new user: uniqueness pre-check, password hash, persist,
// sanitize. The pre-check gives a friendlier conflict message; the unique
// index in the repository remains the authoritative guard against a
// concurrent duplicate racing past it.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.PublicUser, error) {
	if existing, err := s.repo.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrUserExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")

	sanitized := created.Sanitized()
	return &sanitized, nil
}

// Get returns the sanitized user by id, consulting the cache first.
func (s *UserService) Get(ctx context.Context, id string) (*domain.PublicUser, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", id).Msg("user cache read failed")
		} else if cached != nil {
			metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	if s.cache != nil {
		if err := s.cache.Set(ctx, &sanitized); err != nil {
			s.logger.Warn().Err(err).Str("user_id", id).Msg("user cache write failed")
		}
	}
	return &sanitized, nil
}

// List returns all users, newest first.
func (s *UserService) List(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SanitizeAll(users), nil
}

// Update applies a partial patch: existence check, uniqueness pre-check when
// the email actually changes, password hashing when present. Nothing is
// written when any check fails.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.PublicUser, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := ports.UserPatch{UpdatedAt: time.Now().UTC()}

	if input.Email != nil && *input.Email != existing.Email {
		if other, err := s.repo.FindByEmail(ctx, *input.Email); err == nil && other != nil {
			return nil, domain.ErrEmailExists
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		patch.Email = input.Email
	}
	if input.Name != nil {
		patch.Name = input.Name
	}
	if input.Password != nil {
		hash, err := security.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	metrics.UsersUpdatedTotal.Inc()
	s.logger.Info().Str("user_id", id).Msg("user updated")

	sanitized := updated.Sanitized()
	return &sanitized, nil
}

// Delete removes the user; a missing id is a not-found error, matching the
// 404 the pipeline renders for it.
func (s *UserService) Delete(ctx context.Context, id string) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrUserNotFound
	}

	s.invalidate(ctx, id)
	metrics.UsersDeletedTotal.Inc()
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// Search returns sanitized users whose name contains the given substring.
func (s *UserService) Search(ctx context.Context, name string) ([]domain.PublicUser, error) {
	users, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	metrics.UserSearchesTotal.Inc()
	return domain.SanitizeAll(users), nil
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("user cache invalidation failed")
	}
}
