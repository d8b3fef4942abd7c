package password

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/resolvia/dispute-portal/internal/core/domain"
)

// Tests use bcrypt.MinCost; the production cost only changes hashing time.

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	for _, plaintext := range []string{"longenough1", "p@ssw0rd!", strings.Repeat("x", 100)} {
		hash, err := h.Hash(plaintext)
		if err != nil {
			t.Fatalf("Hash(%q) returned error: %v", plaintext, err)
		}
		if hash == plaintext {
			t.Fatalf("hash equals plaintext")
		}
		ok, err := h.Verify(plaintext, hash)
		if err != nil {
			t.Fatalf("Verify returned error: %v", err)
		}
		if !ok {
			t.Fatalf("Verify(%q, hash) = false, want true", plaintext)
		}
	}
}

func TestHasher_WrongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct-horse")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	ok, err := h.Verify("battery-staple", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if ok {
		t.Fatalf("Verify accepted the wrong password")
	}
}

func TestHasher_SaltedOutput(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("identical plaintexts produced identical hashes; salt missing")
	}
}

func TestHasher_CorruptedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Verify("anything", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatalf("expected error for malformed hash")
	}
	if !errors.Is(err, domain.ErrCorruptedHash) {
		t.Fatalf("expected ErrCorruptedHash, got %v", err)
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	if h := NewHasher(0); h.cost != DefaultCost {
		t.Fatalf("expected fallback to DefaultCost, got %d", h.cost)
	}
	if h := NewHasher(99); h.cost != DefaultCost {
		t.Fatalf("expected fallback to DefaultCost, got %d", h.cost)
	}
}
