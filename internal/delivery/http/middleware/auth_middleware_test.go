package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "todo/internal/delivery/context"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"
	mockSvc "todo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateRequest(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newGateRequest(t, "")

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without a token")

		return nil
	}

	err := mw.Authenticate(next)(c)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingToken))
}

func TestAuthMiddleware_EmptyBearerToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	c, _ := newGateRequest(t, "Bearer ")

	err := mw.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingToken))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	tokenSvc.On("Verify", "bad-token").Return(nil, service.ErrInvalidToken)

	c, _ := newGateRequest(t, "Bearer bad-token")

	err := mw.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthMiddleware_ValidTokenAttachesIdentity(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Username: "alice"}
	tokenSvc.On("Verify", "good-token").Return(claims, nil)

	c, _ := newGateRequest(t, "Bearer good-token")

	var nextRan bool
	err := mw.Authenticate(func(c echo.Context) error {
		nextRan = true

		// Identity is available both on the echo context and the request context
		assert.Equal(t, userID, c.Get(string(deliverycontext.KeyUserID)))
		assert.Equal(t, "alice", c.Get(string(deliverycontext.KeyUsername)))

		ctxUserID, ok := deliverycontext.GetUserID(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, userID, ctxUserID)

		username, ok := deliverycontext.GetUsername(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, "alice", username)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextRan)
}

func TestAuthMiddleware_HeaderWithoutBearerPrefix(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	mw := NewAuthMiddleware(tokenSvc)

	// A raw token without the Bearer prefix is still handed to verification
	tokenSvc.On("Verify", "raw-token").Return(nil, service.ErrInvalidToken)

	c, _ := newGateRequest(t, "raw-token")

	err := mw.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
