// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"todo/config"
	"todo/internal/domain/service"
	"todo/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// The work factor comes from config; bcrypt's default cost applies when unset.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt draws a fresh random salt per call, so equal inputs hash differently,
// and the salt is encoded into the output so verification needs nothing else.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.WithStack(service.ErrInvalidPasswordInput)
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash failed")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash in constant time.
// A mismatch is not an error; only malformed inputs or a corrupt stored hash are.
func (h *bcryptHasher) Check(password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, errors.WithStack(service.ErrInvalidPasswordInput)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, errors.Join(service.ErrVerificationFailed, err)
}
