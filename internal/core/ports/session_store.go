package ports

import (
	"context"

	"github.com/resolvia/dispute-portal/internal/core/domain"
)

// SessionStore is the pluggable persistence strategy behind the session
// issuer. Two implementations exist: a Redis-backed record store whose
// opaque tokens can be revoked immediately, and a stateless signed-JWT
// store whose tokens can only lapse by expiry.
type SessionStore interface {
	// Issue creates a session for the principal and returns its token.
	Issue(ctx context.Context, p domain.Principal) (string, error)
	// Get resolves a token into its session, applying the activity refresh
	// window. Unknown or expired tokens return domain.ErrSessionNotFound.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Revoke destroys the session. For the stateless strategy this is a
	// no-op: the token stays valid until expiry unless the client forgets it.
	Revoke(ctx context.Context, token string) error
}
