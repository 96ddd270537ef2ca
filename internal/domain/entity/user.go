// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account created on first successful identity exchange for an email.
// The very first user registered in the system becomes the owner; only the owner
// may grant or revoke admin rights.
type User struct {
	ID        string    `json:"id"`         // Opaque unique identifier, assigned server-side.
	Email     string    `json:"email"`      // Unique login identifier provided by the identity exchange.
	Name      string    `json:"name"`       // Display name.
	Picture   string    `json:"picture"`    // Avatar reference.
	IsAdmin   bool      `json:"is_admin"`   // Admins may create/modify/delete catalog records.
	IsOwner   bool      `json:"is_owner"`   // Set at most once, for the first user ever created.
	CreatedAt time.Time `json:"created_at"` // Timestamp of account creation.
}

// CanManageCatalog reports whether the user passes the admin gate.
// The owner implicitly holds admin rights.
func (u *User) CanManageCatalog() bool {
	return u.IsAdmin || u.IsOwner
}
