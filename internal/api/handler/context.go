package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kkkiikkk/kit-global-test/internal/api/middleware"
)

// ctxUsername extracts the principal injected by the Auth middleware. An
// empty value means the guard did not run for this route; fail closed.
func ctxUsername(c echo.Context) (string, error) {
	username, _ := c.Get(middleware.UsernameKey).(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}
