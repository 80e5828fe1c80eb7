// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity. PasswordHash is an opaque bcrypt digest and is
// never serialized back to callers.
type User struct {
	ID           uuid.UUID // Store-assigned unique identifier.
	Username     string    // Unique display/login name.
	Email        string    // Unique login identifier.
	PasswordHash string    // One-way salted hash of the password. Never the raw password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
