package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, Verify("correct horse battery staple", hash))
	assert.False(t, Verify("wrong password", hash))
	assert.False(t, Verify("", hash))
}

func TestHashToken(t *testing.T) {
	first := HashToken("some-refresh-token")
	second := HashToken("some-refresh-token")
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, HashToken("another-token"))
}

func TestValidate(t *testing.T) {
	assert.False(t, Validate(""))
	assert.False(t, Validate("short"))
	assert.True(t, Validate("12345678"))
}
