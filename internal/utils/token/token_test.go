package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	signed, err := Sign("test-secret", 42, time.Hour)
	require.NoError(t, err)

	userID, err := Parse("test-secret", signed)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
}

func TestParseWrongSecret(t *testing.T) {
	signed, err := Sign("test-secret", 42, time.Hour)
	require.NoError(t, err)

	_, err = Parse("other-secret", signed)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	signed, err := Sign("test-secret", 42, -time.Minute)
	require.NoError(t, err)

	_, err = Parse("test-secret", signed)
	assert.Error(t, err)
}
