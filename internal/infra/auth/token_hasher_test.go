package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenHasher(t *testing.T) {
	hasher := NewTokenHasher()

	digest := hasher.Hash("refresh-token")
	assert.Len(t, digest, 64)
	assert.Equal(t, digest, hasher.Hash("refresh-token"))
	assert.NotEqual(t, digest, hasher.Hash("other-token"))

	assert.True(t, hasher.Equal("refresh-token", digest))
	assert.False(t, hasher.Equal("other-token", digest))
}
