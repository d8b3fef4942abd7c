package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/resolvia/dispute-portal/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// tokenBytes of entropy per opaque session token (64 hex chars on the wire).
const tokenBytes = 32

// SessionStore holds session records server-side, referenced by an opaque
// random token. Because the record is the session, Revoke is effective
// immediately — the property the stateless strategy cannot offer.
type SessionStore struct {
	client     *redis.Client
	maxAge     time.Duration
	refreshAge time.Duration
}

// NewSessionStore wraps the given Redis client. maxAge is the absolute
// session lifetime; refreshAge is the activity window after which a lookup
// re-extends the record.
func NewSessionStore(client *redis.Client, maxAge, refreshAge time.Duration) *SessionStore {
	if maxAge <= 0 {
		maxAge = 30 * 24 * time.Hour
	}
	if refreshAge <= 0 {
		refreshAge = 24 * time.Hour
	}
	return &SessionStore{client: client, maxAge: maxAge, refreshAge: refreshAge}
}

type sessionRecord struct {
	Principal   domain.Principal `json:"principal"`
	CreatedAt   time.Time        `json:"created_at"`
	RefreshedAt time.Time        `json:"refreshed_at"`
	ExpiresAt   time.Time        `json:"expires_at"`
}

func (s *SessionStore) Issue(ctx context.Context, p domain.Principal) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	rec := sessionRecord{
		Principal:   p,
		CreatedAt:   now,
		RefreshedAt: now,
		ExpiresAt:   now.Add(s.maxAge),
	}

	if err := s.write(ctx, token, &rec); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token. When the record is older than refreshAge it is
// re-stamped, sliding the expiry forward up to the absolute maximum measured
// from this refresh.
func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session get: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}

	now := time.Now().UTC()
	if !rec.ExpiresAt.After(now) {
		_ = s.client.Del(ctx, sessionKeyPrefix+token).Err()
		return nil, domain.ErrSessionNotFound
	}

	if now.Sub(rec.RefreshedAt) > s.refreshAge {
		rec.RefreshedAt = now
		rec.ExpiresAt = now.Add(s.maxAge)
		if err := s.write(ctx, token, &rec); err != nil {
			return nil, err
		}
	}

	return &domain.Session{
		Token:       token,
		Principal:   rec.Principal,
		CreatedAt:   rec.CreatedAt,
		RefreshedAt: rec.RefreshedAt,
		ExpiresAt:   rec.ExpiresAt,
	}, nil
}

func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("session revoke: %w", err)
	}
	return nil
}

func (s *SessionStore) write(ctx context.Context, token string, rec *sessionRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	ttl := time.Until(rec.ExpiresAt)
	if err := s.client.Set(ctx, sessionKeyPrefix+token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
