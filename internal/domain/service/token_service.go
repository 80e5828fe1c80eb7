package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"todo/internal/domain/entity"
)

// ErrInvalidAccount is returned when a token is requested for a nil account or
// one without a store-assigned ID.
var ErrInvalidAccount = errors.New("invalid account for token issuance")

// ErrInvalidToken is returned when a token fails signature, structure, or
// expiry checks. Callers cannot tell which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload embedded in every session token.
type Claims struct {
	UserID   uuid.UUID `json:"id"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are stateless bearer credentials; nothing is stored server-side.
type TokenService interface {
	// Issue mints a signed token for the given account, valid for a fixed
	// window from issuance.
	Issue(user *entity.User) (string, error)

	// Verify checks the signature and expiry of a token string and returns the
	// decoded claims on success.
	Verify(tokenString string) (*Claims, error)
}
