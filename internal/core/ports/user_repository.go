package ports

import (
	"context"

	"github.com/resolvia/dispute-portal/internal/core/domain"
)

// UserRepository defines the persistence contract for credential records.
// Reads used for authentication return the password hash; callers outside
// the auth core must only ever see domain.Principal projections.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create persists a new user. The store's unique email constraint is the
	// single arbiter of the duplicate-registration race: exactly one of two
	// concurrent inserts for the same email succeeds, the other returns
	// domain.ErrEmailExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
