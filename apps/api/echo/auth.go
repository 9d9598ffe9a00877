package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/educircle/backend/core"
)

var contextIdentityKey = "identity"

// authMiddleware extracts the bearer credential and verifies it against the
// identity provider before any handler logic runs.
func authMiddleware(verifier core.IdentityVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, err := extractBearerToken(ctx)
			if err != nil {
				return err
			}

			identity, err := verifier.Verify(ctx.Request().Context(), token)
			if err != nil {
				return errUnauthorized
			}

			ctx.Set(contextIdentityKey, identity)
			return next(ctx)
		}
	}
}

func extractBearerToken(ctx echo.Context) (string, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errMissingToken
	}
	return parts[1], nil
}

func getContextIdentity(ctx echo.Context) (core.Identity, error) {
	if id, ok := ctx.Get(contextIdentityKey).(core.Identity); ok {
		return id, nil
	}
	return core.Identity{}, errUnauthorized
}
