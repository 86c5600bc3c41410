package models

import "time"

// Session links a browser cookie to an authenticated user. Sessions are
// stored server-side; the browser only carries the session id inside a
// signed token, so a row deleted here is dead regardless of what the
// client still holds.
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
