package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/user-management-api/internal/security"
)

// Context keys under which the verified token claims are stored.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxName   = "name"
)

// Auth validates the bearer token and injects the identity claims into the
// request context. A missing token and an invalid one render distinct 401
// messages, matching the API contract.
func Auth(tokens *security.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxName, claims.Name)

			return next(c)
		}
	}
}
