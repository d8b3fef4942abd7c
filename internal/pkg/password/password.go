// Package password wraps bcrypt behind the PasswordHasher port. bcrypt
// embeds a per-call random salt in its output, so hashing the same
// plaintext twice never yields the same string, and comparison is
// performed by the algorithm itself in constant time.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/resolvia/dispute-portal/internal/core/domain"
)

// DefaultCost matches the work factor the portal has always used.
const DefaultCost = 12

// bcrypt only keys on the first 72 bytes. The portal accepts passwords up to
// 100 characters, so longer inputs are truncated here explicitly; stored
// hashes created before this service behaved the same way.
const maxPasswordBytes = 72

// Hasher implements ports.PasswordHasher on bcrypt.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given work factor. Costs outside
// bcrypt's supported range fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(keyBytes(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hash. A mismatch is (false, nil).
// Any other bcrypt failure means the stored hash is corrupted; that surfaces
// as domain.ErrCorruptedHash so logs can tell it apart from a wrong password.
func (h *Hasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), keyBytes(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", domain.ErrCorruptedHash, err)
	}
}

func keyBytes(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
