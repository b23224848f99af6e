package ports

// PasswordHasher performs one-way password hashing and verification
type PasswordHasher interface {
	// Hash produces a salted digest of the plaintext. Two calls with the
	// same input yield different digests.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the digest. A malformed
	// digest yields false, never an error.
	Verify(plaintext, digest string) bool
}
