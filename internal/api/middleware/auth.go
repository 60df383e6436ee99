package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kkkiikkk/kit-global-test/internal/api/metrics"
	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
	"github.com/kkkiikkk/kit-global-test/internal/core/ports"
)

// Context keys populated by the guard for downstream handlers.
const (
	UsernameKey     = "username"
	RefreshTokenKey = "refresh_token"
)

// Auth validates the bearer token against the secret of the given class and
// injects the principal into the echo context. In refresh mode the raw token
// string is kept alongside the username. The guard never touches persisted
// state; it only decides pass or reject.
func Auth(tokens ports.TokenManager, class domain.TokenClass) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(class, "missing", "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject(class, "missing", "invalid authorization header")
			}
			raw := strings.TrimSpace(parts[1])

			username, err := tokens.Verify(raw, class)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return reject(class, "expired", "token expired")
				}
				return reject(class, "invalid", "invalid token")
			}

			c.Set(UsernameKey, username)
			if class == domain.TokenClassRefresh {
				c.Set(RefreshTokenKey, raw)
			}

			return next(c)
		}
	}
}

func reject(class domain.TokenClass, reason, msg string) error {
	metrics.AuthRejectionsTotal.WithLabelValues(string(class), reason).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
