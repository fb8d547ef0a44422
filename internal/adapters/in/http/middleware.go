package http

import (
	"net/http"
	"strings"

	"withus/internal/core/domain/services"
	"withus/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const callerContextKey = "caller"

// RequireSession is echo middleware that authenticates requests with a
// Bearer session token. On success the resolved caller identity is stored
// on the request context; a missing or invalid token yields 401.
func RequireSession(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := tokens.VerifySessionToken(token)
			if err != nil {
				return respondError(ctx, err)
			}

			ctx.Set(callerContextKey, services.Caller{
				ID:   claims.UserID,
				Role: claims.Role,
			})

			return next(ctx)
		}
	}
}

// callerFrom returns the authenticated caller stored by RequireSession.
func callerFrom(ctx echo.Context) (services.Caller, bool) {
	caller, ok := ctx.Get(callerContextKey).(services.Caller)
	return caller, ok
}
