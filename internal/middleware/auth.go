// Package middleware holds the per-request authentication gate and the
// authorization guards built on top of it.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"raccoon/internal/auth"
)

const bearerPrefix = "Bearer "

// identityKey is the echo context key the gate stores the identity under.
// All authentication state is request-scoped; nothing is shared between
// requests.
const identityKey = "auth.identity"

// IdentityFrom returns the authenticated identity attached to the request,
// or nil when the request is anonymous.
func IdentityFrom(c echo.Context) *auth.Identity {
	identity, _ := c.Get(identityKey).(*auth.Identity)
	return identity
}

// Gate authenticates at most once per request. Behavior, in order:
//
//   - no Authorization header, or a non-Bearer scheme: pass through
//     anonymously; whether anonymity is acceptable is the endpoint's call.
//   - token that cannot be parsed: 401 immediately, without touching the
//     principal directory.
//   - unknown subject, bad signature, or expired token: pass through
//     anonymously; endpoints that need an identity reject the request
//     themselves. Only the malformed case short-circuits.
//   - otherwise: attach the identity for the rest of the pipeline.
//
// The subject is read from the token before the signature is checked,
// because the principal must be loaded to complete validation. The
// unverified subject is used for that lookup only; identity is attached
// strictly after Validate succeeds.
func Gate(codec *auth.TokenCodec, directory auth.PrincipalDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IdentityFrom(c) != nil {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return next(c)
			}
			token := strings.TrimPrefix(header, bearerPrefix)

			subject, err := codec.ExtractSubject(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed token")
			}

			ctx := c.Request().Context()
			principal, err := directory.LoadPrincipal(ctx, subject)
			if err != nil {
				return next(c)
			}

			claims, err := codec.Validate(token)
			if err != nil || claims.Subject != principal.Username {
				return next(c)
			}

			identity, err := directory.LoadIdentity(ctx, principal.Username)
			if err != nil {
				return next(c)
			}
			c.Set(identityKey, identity)

			return next(c)
		}
	}
}

// RequireAuth rejects requests that reach it without an identity.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if IdentityFrom(c) == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		return next(c)
	}
}

// RequireRole rejects authenticated requests lacking the named role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := IdentityFrom(c)
			if identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !identity.HasRole(role) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
