// Package service defines interfaces for external collaborators consumed by
// the application layer.
package service

import "context"

// Identity is the payload returned by the third-party identity exchange for a
// valid external session identifier.
type Identity struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// IdentityExchanger resolves an opaque external session identifier to an
// identity. The exchange is the only authority on credentials; this system
// never sees passwords.
type IdentityExchanger interface {
	Exchange(ctx context.Context, externalSessionID string) (*Identity, error)
}
