package auth

import (
	"testing"
	"time"

	"todo/config"
	"todo/internal/domain/entity"
	"todo/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func testUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	_, err = NewJWTService(nil)
	assert.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")
	user := testUser()

	token, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)

	// Expiry sits 24 hours after issuance
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_IssueRejectsInvalidAccount(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	_, err := svc.Issue(nil)
	assert.True(t, errors.Is(err, service.ErrInvalidAccount))

	_, err = svc.Issue(&entity.User{Username: "no-id"})
	assert.True(t, errors.Is(err, service.ErrInvalidAccount))
}

func TestJWTService_VerifyRejectsForeignSecret(t *testing.T) {
	issuer := newTestTokenService(t, "secret-one")
	verifier := newTestTokenService(t, "secret-two")

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_VerifyRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	svc := newTestTokenService(t, secret)
	user := testUser()

	// Hand-sign a token that expired an hour ago
	now := time.Now()
	claims := &service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(tokenString)
		assert.Error(t, err, "token %q should not verify", tokenString)
	}
}

func TestJWTService_VerifyRejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_VerifyRejectsUnsignedAlgorithm(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	claims := &service.Claims{
		UserID:   uuid.New(),
		Username: "mallory",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}
