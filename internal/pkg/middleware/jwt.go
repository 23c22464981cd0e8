package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/civease/civease/internal/pkg/jwt"
	"github.com/civease/civease/internal/pkg/models"
	"github.com/civease/civease/internal/utils"
)

// Context keys set by the auth middleware
const (
	ContextSubjectID    = "subject_id"
	ContextIdentityKind = "identity_kind"
)

// RequireIdentity creates JWT authentication middleware that only admits
// tokens bound to the given identity kind. A valid citizen token presented
// to an authority route is rejected the same way as a bad token.
func RequireIdentity(kind jwtpkg.IdentityKind, config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}

			if claims.Kind != kind {
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}

			c.Set(ContextSubjectID, claims.SubjectID)
			c.Set(ContextIdentityKind, claims.Kind)

			return next(c)
		}
	}
}
