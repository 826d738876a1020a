package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenIssuer: "workshophub-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateToken("WS2024-001", "Ada Lovelace", "participant")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "WS2024-001", claims.UserID)
	assert.Equal(t, "Ada Lovelace", claims.Name)
	assert.Equal(t, "participant", claims.Role)
	assert.Equal(t, "workshophub-test", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(TokenLifetime), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := newTestService().GenerateToken("WS2024-001", "Ada", "participant")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret"})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	service := newTestService()

	// Hand-sign a token that expired an hour ago with the service's key
	claims := &Claims{
		UserID: "WS2024-001",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenEmpty(t *testing.T) {
	_, err := newTestService().ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenFromRequestHeaderBeatsCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "cookie-token"})

	token, err := TokenFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "header-token", token)
}

func TestTokenFromRequestCookieFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "cookie-token"})

	token, err := TokenFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "cookie-token", token)
}

func TestTokenFromRequestMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := TokenFromRequest(req)
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw12345678")
	require.NoError(t, err)
	assert.NotEqual(t, "pw12345678", hash)

	assert.True(t, CheckPassword(hash, "pw12345678"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
