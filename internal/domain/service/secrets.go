// Package service declares the capabilities the auth usecases depend on. Implementations live
// under internal/infra.
package service

// PasswordHasher stores passwords with a slow, salted hash.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Any malformed hash is a mismatch.
	Check(password, hash string) bool
}

// OtpCodeService generates numeric one-time codes and hashes them for storage.
type OtpCodeService interface {
	// Generate returns a fixed-width numeric code drawn from a cryptographically secure source.
	Generate() (string, error)

	// Hash returns a salted, adaptive one-way hash of the code.
	Hash(code string) (string, error)

	// Compare reports whether code matches the stored hash.
	Compare(code, hash string) bool
}
