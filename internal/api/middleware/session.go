package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CookieName is the session cookie. It carries a signed token, not the
// session data itself; all state lives server-side in the session store.
const CookieName = "fruito_sid"

// ContextKeySID is where the middleware places the session id on the echo
// context.
const ContextKeySID = "sid"

// Session resolves the visitor's session id from the signed cookie, minting
// a fresh one when the cookie is missing, expired out of the store, or
// forged. A bad cookie never produces an error page: the visitor simply
// continues as a guest with a new session, matching how a corrupt stored
// identity degrades.
func Session(secret string, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""

			if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
				sid = parseSessionToken(cookie.Value, secret)
			}

			if sid == "" {
				sid = uuid.NewString()
				token, err := signSessionToken(sid, secret)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "session setup failed")
				}
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(ContextKeySID, sid)
			return next(c)
		}
	}
}

// parseSessionToken validates the cookie token and extracts the sid claim.
// Returns empty on any failure.
func parseSessionToken(token, secret string) string {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

func signSessionToken(sid, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
