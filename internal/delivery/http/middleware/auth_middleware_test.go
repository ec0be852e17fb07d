package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cashreap/config"
	"cashreap/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc)
}

func invokeAuthenticate(m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/saved-cards", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	err := m.Authenticate(next)(c)

	return rec, c, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, _, err := tokenSvc.GenerateTokens(userID)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc)
	rec, c, err := invokeAuthenticate(m, "Bearer "+accessToken)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := newTestAuthMiddleware(t)

	rec, _, err := invokeAuthenticate(m, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_NonBearerHeader(t *testing.T) {
	m := newTestAuthMiddleware(t)

	rec, _, err := invokeAuthenticate(m, "Basic dXNlcjpwYXNz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	m := newTestAuthMiddleware(t)

	rec, c, err := invokeAuthenticate(m, "Bearer not-a-jwt")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, ok := GetUserID(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_RefreshTokenRejectedAsAccess(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret, so presenting one
	// as an access token must fail validation.
	_, refreshToken, err := tokenSvc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc)
	rec, _, err := invokeAuthenticate(m, "Bearer "+refreshToken)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
