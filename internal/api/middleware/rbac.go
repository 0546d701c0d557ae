package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminChecker reports whether the stored role for an identity is admin.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin gates a route on the stored admin role. It trusts the email
// claim injected by Auth and must always run after it. Unknown identities are
// forbidden, not errors.
func RequireAdmin(users AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			isAdmin, err := users.IsAdmin(c.Request().Context(), email)
			if err != nil {
				return err
			}
			if !isAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden access"})
			}
			return next(c)
		}
	}
}

// RequireSelf restricts a route to the identity named by its path parameter:
// the caller may only act on their own records.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if c.Param(param) != email {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden access"})
			}
			return next(c)
		}
	}
}
