package domain

import "time"

// Session is an issued authentication context. For the server-held strategy
// the struct is what gets persisted; for the stateless strategy it is
// reconstructed from token claims on every request.
type Session struct {
	Token       string    `json:"-"`
	Principal   Principal `json:"principal"`
	CreatedAt   time.Time `json:"created_at"`
	RefreshedAt time.Time `json:"refreshed_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	if s == nil {
		return true
	}
	return !s.ExpiresAt.After(now)
}

// Stale reports whether the session is due for an activity refresh.
func (s *Session) Stale(now time.Time, refreshAge time.Duration) bool {
	if s == nil {
		return true
	}
	return now.Sub(s.RefreshedAt) > refreshAge
}
