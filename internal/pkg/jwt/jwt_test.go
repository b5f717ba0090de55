package jwt

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, strconv.Itoa(42), claims.Subject)
	assert.NotEmpty(t, claims.ID)

	// 24h validity
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, TokenLifetime.Seconds(), ttl.Seconds(), 60)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, testSecret)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateTokenWithLifetime(1, testSecret, -time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
