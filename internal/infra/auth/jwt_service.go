// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"todo/config"
	"todo/internal/domain/entity"
	"todo/internal/domain/service"
	"todo/internal/errors"
)

// tokenValidity is the fixed lifetime of every session token.
const tokenValidity = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It holds the single process-wide signing secret; all tokens are signed and
// verified against it for the lifetime of the process.
type jwtService struct {
	secret []byte
}

// NewJWTService is the constructor for jwtService. It fails fast when no
// signing secret is configured.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: []byte(cfg.JWT.Secret)}, nil
}

// Issue creates a signed HS256 token carrying the account's id and username,
// valid for 24 hours from issuance.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	if user == nil || user.ID == uuid.Nil {
		return "", errors.WithStack(service.ErrInvalidAccount)
	}

	now := time.Now()
	claims := &service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenValidity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks a token's signature and expiry and returns the decoded claims.
// Malformed structure, a foreign signature, and expiry all collapse into
// service.ErrInvalidToken.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Join(service.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, errors.WithStack(service.ErrInvalidToken)
	}

	return claims, nil
}
