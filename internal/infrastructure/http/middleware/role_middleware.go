package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/truthos/meeting-intelligence/internal/domain/entities"
)

const (
	// RoleContextKey is the echo context key for the parsed RoleContext
	RoleContextKey = "role_context"

	headerUserRole = "X-User-Role"
	headerUserID   = "X-User-Id"

	defaultUserID = "demo-user"
)

// EchoRole parses the caller-supplied role claim into an explicit RoleContext
// value once, at the edge. Everything below the handler layer receives the
// value as an argument; no store or agent re-derives the role from request
// state. An absent role header means a basic (read-only) caller.
func EchoRole() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleHeader := c.Request().Header.Get(headerUserRole)
			if roleHeader == "" {
				roleHeader = string(entities.RoleBasic)
			}

			role, err := entities.ParseRole(roleHeader)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid "+headerUserRole+" (use operator|basic)")
			}

			userID := c.Request().Header.Get(headerUserID)
			if userID == "" {
				userID = defaultUserID
			}

			c.Set(RoleContextKey, entities.RoleContext{UserID: userID, Role: role})
			return next(c)
		}
	}
}

// GetRoleContext retrieves the RoleContext set by EchoRole. Missing context
// (a route registered without the middleware) is treated as a basic caller.
func GetRoleContext(c echo.Context) entities.RoleContext {
	if rc, ok := c.Get(RoleContextKey).(entities.RoleContext); ok {
		return rc
	}
	return entities.RoleContext{UserID: defaultUserID, Role: entities.RoleBasic}
}
