package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodchain/portal/internal/core/domain"
)

// RequireLogin rejects API calls from logged-out sessions.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get(ContextKeyRole).(string); role == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not logged in"})
			}
			return next(c)
		}
	}
}

// RBAC enforces role-based access control on the claimed role.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
