// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrInvalidPasswordInput is returned when a hashing or verification argument
// is empty or whitespace-only.
var ErrInvalidPasswordInput = errors.New("password must be a non-empty string")

// ErrVerificationFailed is returned when a password comparison fails for a
// reason other than a plain mismatch (e.g. a corrupt stored hash).
var ErrVerificationFailed = errors.New("password verification failed")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Each call uses a
	// fresh salt, so hashing the same password twice yields different outputs.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash. A legitimate mismatch
	// returns (false, nil); only input or computation failures return an error.
	Check(password, hash string) (bool, error)
}
