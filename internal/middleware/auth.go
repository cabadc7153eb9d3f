package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pratheepg2026-commits/crm-v2/pkg/jwtutil"
	"github.com/pratheepg2026-commits/crm-v2/pkg/logger"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"go.uber.org/zap"
)

const userIDKey = "user_id"

// AuthMiddleware rejects requests without a valid bearer token and stores the
// caller's account id in the context.
func AuthMiddleware(tokens *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("Missing Authorization header")
				prometheus.RecordAuthError("missing_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				log.Warn("Invalid Authorization header format")
				prometheus.RecordAuthError("invalid_header")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
			}

			claims, err := tokens.ValidateToken(parts[1])
			if err != nil {
				log.Warn("Invalid JWT token", zap.Error(err))
				prometheus.RecordAuthError("invalid_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			c.Set(userIDKey, claims.UserID)
			c.Set(logger.EchoKey, log.With(zap.Uint("user_id", claims.UserID)))

			return next(c)
		}
	}
}

// GetUserIDFromContext retrieves the authenticated account id.
// Returns 0, false outside the auth middleware.
func GetUserIDFromContext(c echo.Context) (uint, bool) {
	userID, ok := c.Get(userIDKey).(uint)
	return userID, ok && userID != 0
}
