package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("Secret123", hash))
	assert.False(t, CheckPasswordHash("secret123", hash))
}

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "user-1", "doctor", "top-secret", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := ParseSessionJWT(token, "top-secret")
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "doctor", claims.Role)
}

func TestParseSessionJWT_Rejects(t *testing.T) {
	expired, err := GenerateSessionJWT("session-1", "user-1", "doctor", "top-secret", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = ParseSessionJWT(expired, "top-secret")
	assert.Error(t, err)

	valid, err := GenerateSessionJWT("session-1", "user-1", "doctor", "top-secret", time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = ParseSessionJWT(valid, "another-secret")
	assert.Error(t, err)

	_, err = ParseSessionJWT("not-a-token", "top-secret")
	assert.Error(t, err)
}
