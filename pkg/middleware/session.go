package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jagung/entities"
	"jagung/pkg/auth/service"
)

const cookieName = "SESSION_TOKEN"

// Session resolves the session cookie and rejects requests without a
// live session. The session lands in the context under "session".
func Session(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(cookieName)
			if err != nil || ck.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			sess, ok := auth.Lookup(ck.Value)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			c.Set("session", sess)
			return next(c)
		}
	}
}

// RequireWriter refuses Viewer sessions on mutating routes.
func RequireWriter() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get("session").(*entities.Session)
			if sess == nil || !sess.Role.CanWrite() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "read-only access: import and edit are disabled for this account"})
			}
			return next(c)
		}
	}
}

// RequireAdmin gates the settings surface.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get("session").(*entities.Session)
			if sess == nil || sess.Role != entities.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin only"})
			}
			return next(c)
		}
	}
}
