package utils

import (
	"encoding/base64"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateOTPCode()
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestDeriveAPIKey(t *testing.T) {
	id := GenerateUUID()

	key := DeriveAPIKey("a@x.com", id)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("a@x.com"+id.String())), key)

	// deterministic for the same inputs
	assert.Equal(t, key, DeriveAPIKey("a@x.com", id))

	// decodes back to the inputs
	decoded, err := base64.StdEncoding.DecodeString(key)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com"+id.String(), string(decoded))
}

func TestGenerateStorageKey(t *testing.T) {
	k1 := GenerateStorageKey()
	k2 := GenerateStorageKey()

	assert.True(t, strings.HasPrefix(k1, "uploads/"))
	assert.NotEqual(t, k1, k2)
	assert.Len(t, strings.Split(k1, "/"), 5)
}
