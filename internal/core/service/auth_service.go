package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/resolvia/dispute-portal/internal/core/domain"
	"github.com/resolvia/dispute-portal/internal/core/ports"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 100
)

// AuthService implements registration and credential authentication.
// It is a pure decision layer: authentication never writes to the user
// record (no lockout counters, no last-login stamps).
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher) *AuthService {
	return &AuthService{repo: repo, hasher: hasher}
}

// Register validates the input, enforces email uniqueness and the
// business-name rule, hashes the password and persists the user as
// pending/unverified. The returned user carries no password hash.
// Step order is fixed: validation, uniqueness, hashing, persistence.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	in.Email = normalizeEmail(in.Email)

	role, verr := validateRegister(in)
	if !verr.Empty() {
		return nil, verr
	}

	// Early duplicate check for a friendly failure; the unique index on the
	// store remains the arbiter when two registrations race past this read.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:          in.Email,
		PasswordHash:   hash,
		Role:           role,
		Status:         domain.StatusPending,
		Verified:       false,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Phone:          strings.TrimSpace(in.Phone),
		BusinessName:   strings.TrimSpace(in.BusinessName),
		BusinessNumber: strings.TrimSpace(in.BusinessNumber),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	created.PasswordHash = ""
	return created, nil
}

// Authenticate resolves an email/password pair into session claims.
// Unknown email and wrong password collapse into the same
// ErrInvalidCredentials so callers cannot enumerate registered accounts.
// The suspension gate runs only after the password has been proven.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (domain.Principal, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Principal{}, domain.ErrInvalidCredentials
		}
		return domain.Principal{}, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		// Malformed stored hash is an internal fault, not a wrong password.
		return domain.Principal{}, err
	}
	if !ok {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}

	if user.Status == domain.StatusSuspended {
		return domain.Principal{}, domain.ErrAccountSuspended
	}

	return domain.NewPrincipal(user), nil
}

// validateRegister collects every violation before reporting, so the caller
// sees all problems in one response.
func validateRegister(in ports.RegisterInput) (domain.Role, *domain.ValidationError) {
	verr := domain.NewValidationError()

	if in.Email == "" {
		verr.Violation("email", "email is required")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		verr.Violation("email", "email must be a valid address")
	}

	switch n := len(in.Password); {
	case n < minPasswordLen:
		verr.Violation("password", "password must be at least 8 characters")
	case n > maxPasswordLen:
		verr.Violation("password", "password must be at most 100 characters")
	}

	role, ok := domain.ParseRole(in.Role)
	if !ok {
		verr.Violation("role", "role must be one of: consumer, business, adjudicator, admin")
	}

	if role == domain.RoleBusiness && strings.TrimSpace(in.BusinessName) == "" {
		verr.Violation("business_name", "business name is required for business accounts")
	}

	return role, verr
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
