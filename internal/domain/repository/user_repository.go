// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailOrUsername retrieves a user matching either identifier.
	// Used by the registration flow's uniqueness pre-check.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)

	// Create persists a new user entity to the storage. A unique-constraint
	// violation on email or username surfaces as a duplicate-account error.
	Create(ctx context.Context, user *entity.User) error
}
