package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

const (
	// TokenIssuer and TokenAudience tag every issued token; both are
	// verified on parse.
	TokenIssuer   = "user-management-api"
	TokenAudience = "user-management-client"

	defaultTokenTTL = 24 * time.Hour
)

// Claims is the identity payload embedded in a session token.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed session tokens. The signing
// secret is process-wide configuration, loaded once at startup.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's id, email and name, expiring
// ttl from now.
func (m *TokenManager) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Audience:  jwt.ClaimStrings{TokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify validates signature, expiry, issuer and audience. Any failure,
// including a malformed token, yields domain.ErrInvalidToken.
func (m *TokenManager) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	},
		jwt.WithIssuer(TokenIssuer),
		jwt.WithAudience(TokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
