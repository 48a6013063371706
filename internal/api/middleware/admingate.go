package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminChecker reports whether a session recorded a successful admin login.
type AdminChecker interface {
	IsAdmin(ctx context.Context, sid string) bool
}

// AdminGate protects the admin dashboard routes. Sessions without the admin
// flag are redirected to the public admin gate page.
//
// This gate is advisory only: it decides what renders, never what the
// backend accepts. Product creation re-sends credentials that the backend
// verifies on every call.
func AdminGate(checker AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, _ := c.Get(ContextKeySID).(string)
			if sid == "" || !checker.IsAdmin(c.Request().Context(), sid) {
				return c.Redirect(http.StatusSeeOther, "/admin")
			}
			return next(c)
		}
	}
}
