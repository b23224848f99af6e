package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", digest)

	assert.True(t, h.Verify("p1", digest))
	assert.False(t, h.Verify("p2", digest))
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("p1")
	require.NoError(t, err)
	second, err := h.Hash("p1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("p1", first))
	assert.True(t, h.Verify("p1", second))
}

func TestVerify_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("p1", ""))
	assert.False(t, h.Verify("p1", "not-a-bcrypt-digest"))
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	// Falls back to the default cost rather than failing at hash time
	h := NewBcryptHasher(99)

	digest, err := h.Hash("p1")
	require.NoError(t, err)
	assert.True(t, h.Verify("p1", digest))
}
