package ports

import (
	"context"

	"github.com/resolvia/dispute-portal/internal/core/domain"
)

// RegisterInput carries the fields accepted by registration. Business name
// and number are only meaningful (and business name required) when the role
// is business.
type RegisterInput struct {
	Email          string
	Password       string
	Role           string
	FirstName      string
	LastName       string
	Phone          string
	BusinessName   string
	BusinessNumber string
}

type AuthService interface {
	// Register creates a pending, unverified user or fails with a
	// *domain.ValidationError or domain.ErrEmailExists. It never issues a
	// session; registration and sign-in are separate steps.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Authenticate resolves an email/password pair into session claims.
	// Unknown email and wrong password both collapse into
	// domain.ErrInvalidCredentials; a suspended account with a correct
	// password fails with domain.ErrAccountSuspended.
	Authenticate(ctx context.Context, email, password string) (domain.Principal, error)
}
