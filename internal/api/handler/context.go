package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fruito/storefront/internal/api/middleware"
)

// sessionID extracts the session id injected by the Session middleware.
// Empty means the middleware did not run; callers treat that as a guest
// session with nothing to read or write.
func sessionID(c echo.Context) string {
	sid, _ := c.Get(middleware.ContextKeySID).(string)
	return sid
}
