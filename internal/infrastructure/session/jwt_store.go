// Package session provides the stateless session strategy: a self-contained
// HS256 token carrying the full principal. There is no server-side record,
// so a token cannot be force-revoked before its expiry — deployments that
// need immediate revocation must use the Redis-backed store instead.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/resolvia/dispute-portal/internal/core/domain"
)

// JWTStore implements ports.SessionStore on signed tokens.
type JWTStore struct {
	secret []byte
	maxAge time.Duration
}

func NewJWTStore(secret string, maxAge time.Duration) *JWTStore {
	if maxAge <= 0 {
		maxAge = 30 * 24 * time.Hour
	}
	return &JWTStore{secret: []byte(secret), maxAge: maxAge}
}

func (s *JWTStore) Issue(_ context.Context, p domain.Principal) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":        p.UserID,
		"email":      p.Email,
		"role":       string(p.Role),
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"status":     string(p.Status),
		"verified":   p.Verified,
		"iat":        now.Unix(),
		"exp":        now.Add(s.maxAge).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Get validates the signature and expiry and reconstructs the session from
// the claims. Any parse or validation failure collapses into
// ErrSessionNotFound; the caller cannot act differently on the cause.
func (s *JWTStore) Get(_ context.Context, token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrSessionNotFound
	}

	role, ok := domain.ParseRole(stringClaim(claims, "role"))
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	status, ok := domain.ParseStatus(stringClaim(claims, "status"))
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	verified, _ := claims["verified"].(bool)
	issuedAt := time.Unix(int64(numClaim(claims, "iat")), 0).UTC()
	expiresAt := time.Unix(int64(numClaim(claims, "exp")), 0).UTC()

	return &domain.Session{
		Token: token,
		Principal: domain.Principal{
			UserID:    stringClaim(claims, "sub"),
			Email:     stringClaim(claims, "email"),
			Role:      role,
			FirstName: stringClaim(claims, "first_name"),
			LastName:  stringClaim(claims, "last_name"),
			Status:    status,
			Verified:  verified,
		},
		CreatedAt:   issuedAt,
		RefreshedAt: issuedAt,
		ExpiresAt:   expiresAt,
	}, nil
}

// Revoke is a no-op: nothing server-side references the token. Sign-out only
// removes the client's copy.
func (s *JWTStore) Revoke(context.Context, string) error {
	return nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

func numClaim(claims jwt.MapClaims, key string) float64 {
	v, _ := claims[key].(float64)
	return v
}
