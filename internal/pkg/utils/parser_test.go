package utils

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("Valid Token", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, 1)
		require.NoError(t, err)

		sessionID, err := ParseJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, 1)
		require.NoError(t, err)

		_, err = ParseJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"session_id": "session-123",
			"exp":        time.Now().Add(-time.Minute).Unix(),
		})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseJWT(signed, secret)
		assert.Error(t, err)
	})

	t.Run("Other HMAC Algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, SessionClaims{SessionID: "session-123"})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseJWT(signed, secret)
		assert.Error(t, err)
	})

	t.Run("Missing Session Claim", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "someone",
		})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseJWT(signed, secret)
		assert.EqualError(t, err, "invalid token")
	})
}

func TestGenerateSessionJWT_Claims(t *testing.T) {
	signed, err := GenerateSessionJWT("session-123", "test-secret", 2)
	require.NoError(t, err)

	claims := new(SessionClaims)
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "session-123", claims.SessionID)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, time.Minute)
	assert.Equal(t, 2*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestRequestIDRoundTrip(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "RSVC_abc")
	assert.Equal(t, "RSVC_abc", GetRequestID(ctx))
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.Contains(t, first, "RSVC_")
	assert.NotEqual(t, first, second)
}
