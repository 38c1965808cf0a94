package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/usermgmt/user-management-api/internal/metrics"
	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
	"github.com/usermgmt/user-management-api/internal/security"
)

// AuthService implements login: lookup, password check, token issuance.
type AuthService struct {
	repo   ports.UserRepository
	tokens *security.TokenManager
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *security.TokenManager, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login authenticates the credentials and returns a signed session token with
// the sanitized user. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.PublicUser, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	sanitized := user.Sanitized()
	return token, &sanitized, nil
}
