package http

import (
	"net/http"
	"slices"
	"strings"

	"logistics/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const (
	subjectContextKey = "auth.subject"
	roleContextKey    = "auth.role"
)

// AuthMiddleware validates the Bearer token on protected routes and stores
// the authenticated subject and role on the request context.
func AuthMiddleware(signer ports.TokenSigner) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			subject, role, err := signer.Parse(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			ctx.Set(subjectContextKey, subject)
			ctx.Set(roleContextKey, role)
			return next(ctx)
		}
	}
}

// RequireRoles rejects authenticated requests whose role claim is not in the
// allowed set. It must run after AuthMiddleware.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			role, _ := ctx.Get(roleContextKey).(string)
			if !slices.Contains(roles, role) {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "insufficient permissions",
				})
			}
			return next(ctx)
		}
	}
}
