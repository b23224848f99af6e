package hasher

import (
	"fmt"

	"github.com/layer-3/vouch/ports"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements the PasswordHasher interface using bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher with the given cost factor.
// Costs outside bcrypt's supported range fall back to the default.
func NewBcryptHasher(cost int) ports.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash produces a salted bcrypt digest of the plaintext
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. bcrypt's
// comparison is constant-time; malformed digests simply fail the match.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
