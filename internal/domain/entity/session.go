package entity

import "time"

// Session binds an opaque bearer token to a user. At most one active session is
// retained per user: creating a new session deletes all prior ones.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"` // Opaque credential issued by the identity exchange; never serialized.
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session is unusable at the given instant.
// A session whose expiry equals now is already expired.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
