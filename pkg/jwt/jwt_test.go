package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, "alice", TypeAccess, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, TypeAccess, claims.Type)
}

func TestParseExpired(t *testing.T) {
	token, err := GenerateToken(secret, "alice", TypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseInvalid(t *testing.T) {
	token, err := GenerateToken([]byte("other"), "alice", TypeAccess, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ParseToken(secret, TypeAccess, "not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseWrongType(t *testing.T) {
	token, err := GenerateToken(secret, "alice", "refresh", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
