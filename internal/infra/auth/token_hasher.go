package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"authcore/internal/domain/service"
)

// sha256TokenHasher stores refresh tokens as hex SHA-256 digests. The digest is deterministic so
// it can back a unique index; the token itself is high-entropy, so no salt is needed.
type sha256TokenHasher struct{}

// NewTokenHasher creates the refresh token hasher.
func NewTokenHasher() service.TokenHasher {
	return sha256TokenHasher{}
}

func (sha256TokenHasher) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func (h sha256TokenHasher) Equal(token, digest string) bool {
	computed := h.Hash(token)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
