// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can sign in and own notes.
// Email is unique across all users.
type User struct {
	ID           int64     `json:"id"`       // Store-assigned identifier.
	Name         string    `json:"name"`     // Display name.
	Email        string    `json:"email"`    // Login identifier, unique.
	PasswordHash string    `json:"password"` // One-way hash. Scrubbed to "" before leaving the service.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Scrubbed returns a copy of the user with the password hash cleared,
// safe to hand to the transport layer.
func (u *User) Scrubbed() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.PasswordHash = ""

	return &clone
}
