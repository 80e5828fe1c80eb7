package auth

import (
	"testing"

	"todo/config"
	"todo/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() service.PasswordHasher {
	// Low cost keeps the test suite fast
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = bcrypt.MinCost

	return NewBcryptHasher(cfg)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "secret-password"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	match, err := hasher.Check(password, hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestBcryptHasher_HashProducesUniqueSalts(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// Each hash draws a fresh salt
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_HashRejectsEmptyPassword(t *testing.T) {
	hasher := newTestHasher()

	_, err := hasher.Hash("")
	assert.True(t, errors.Is(err, service.ErrInvalidPasswordInput))

	_, err = hasher.Hash("   ")
	assert.True(t, errors.Is(err, service.ErrInvalidPasswordInput))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "secret-password"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	match, err := hasher.Check(password, hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = hasher.Check("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestBcryptHasher_CheckInvalidInputs(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	_, err = hasher.Check("", hash)
	assert.True(t, errors.Is(err, service.ErrInvalidPasswordInput))

	_, err = hasher.Check("secret-password", "")
	assert.True(t, errors.Is(err, service.ErrInvalidPasswordInput))

	// A corrupt stored hash is an error, not a mismatch
	_, err = hasher.Check("secret-password", "not-a-bcrypt-hash")
	assert.True(t, errors.Is(err, service.ErrVerificationFailed))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = 6
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_DefaultCostWhenUnset(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
