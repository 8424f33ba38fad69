//go:build unit
// +build unit

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndParseToken(t *testing.T) {
	signed, claims, err := GenerateToken(testSecret, 42, AccountUser, "owner", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.NotEmpty(t, claims.ID)

	parsed, err := ParseToken(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), parsed.AccountID)
	assert.Equal(t, AccountUser, parsed.AccountType)
	assert.Equal(t, "owner", parsed.Role)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	signed, _, err := GenerateToken(testSecret, 1, AccountCustomer, "customer", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(signed, "another-secret-entirely-0000000000")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	signed, _, err := GenerateToken(testSecret, 1, AccountUser, "waiter", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(signed, testSecret)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret", 0)
	require.NoError(t, err)
	assert.True(t, CheckPassword("s3cret", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
