// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"todo/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterOutput returns the newly created account. The password hash is
// stripped before the delivery layer serializes the user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the authenticated account and its session token.
type LoginOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
