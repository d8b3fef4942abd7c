package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/resolvia/dispute-portal/internal/api/metrics"
	"github.com/resolvia/dispute-portal/internal/core/domain"
	"github.com/resolvia/dispute-portal/internal/core/ports"
)

// SessionCookieName is the cookie carrying the session token. API clients
// may send the same token as a bearer Authorization header instead.
const SessionCookieName = "portal_session"

// PrincipalKey is the echo context key under which the authenticated
// principal is stored by the session middleware.
const PrincipalKey = "principal"

// SessionTokenKey holds the raw token so sign-out can revoke it.
const SessionTokenKey = "session_token"

// GateConfig configures the access-control gate over protected path
// prefixes.
type GateConfig struct {
	// SignInPath is where unauthenticated requests are sent, with the
	// original path attached as callbackUrl.
	SignInPath string
	// DashboardPath is the role-agnostic protected entry point; requests to
	// it are redirected to the path scoped to the session's role.
	DashboardPath string
}

// Gate enforces the two routing invariants on protected pages:
//
//   - no valid session → redirect to sign-in carrying the requested path;
//   - a role-scoped dashboard path must match the session's role, otherwise
//     the user is redirected to their own area before any handler runs.
//
// The gate never authenticates; it only reads the session issued at sign-in.
func Gate(store ports.SessionStore, cfg GateConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := resolveSession(c, store)
			if err != nil {
				target := cfg.SignInPath + "?callbackUrl=" + url.QueryEscape(c.Request().URL.RequestURI())
				return c.Redirect(http.StatusFound, target)
			}

			c.Set(PrincipalKey, sess.Principal)
			c.Set(SessionTokenKey, sess.Token)

			path := c.Request().URL.Path
			rolePath := cfg.DashboardPath + "/" + string(sess.Principal.Role)

			// Generic entry point → the session's own area.
			if path == cfg.DashboardPath || path == cfg.DashboardPath+"/" {
				return c.Redirect(http.StatusFound, rolePath)
			}

			// Role-scoped paths: the embedded role segment must match.
			if rest, ok := strings.CutPrefix(path, cfg.DashboardPath+"/"); ok {
				seg, _, _ := strings.Cut(rest, "/")
				if seg != string(sess.Principal.Role) {
					return c.Redirect(http.StatusFound, rolePath)
				}
			}

			return next(c)
		}
	}
}

// RequireSession is the API-shaped variant of the gate: instead of
// redirecting, missing or invalid sessions fail with 401.
func RequireSession(store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := resolveSession(c, store)
			if err != nil {
				return domain.ErrSessionNotFound
			}
			c.Set(PrincipalKey, sess.Principal)
			c.Set(SessionTokenKey, sess.Token)
			return next(c)
		}
	}
}

func resolveSession(c echo.Context, store ports.SessionStore) (*domain.Session, error) {
	token := extractToken(c)
	if token == "" {
		metrics.SessionLookupsTotal.WithLabelValues("miss").Inc()
		return nil, domain.ErrSessionNotFound
	}

	sess, err := store.Get(c.Request().Context(), token)
	if err != nil {
		metrics.SessionLookupsTotal.WithLabelValues("miss").Inc()
		return nil, err
	}

	metrics.SessionLookupsTotal.WithLabelValues("hit").Inc()
	return sess, nil
}

// extractToken prefers the session cookie and falls back to a bearer header.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
