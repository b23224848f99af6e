package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layer-3/vouch/core"
)

func TestMemoryStore_CreateAndFind(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	user := &core.User{Email: "a@x.com", PasswordHash: "digest", Age: 28}
	require.NoError(t, s.Create(ctx, user))

	found, err := s.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user, found)

	_, err = s.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestMemoryStore_CreateDuplicate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &core.User{Email: "a@x.com"}))
	assert.ErrorIs(t, s.Create(ctx, &core.User{Email: "a@x.com"}), core.ErrUserExists)
}

func TestMemoryStore_Update(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &core.User{Email: "a@x.com"}))

	updated := &core.User{Email: "a@x.com", TwoFAEnabled: true, TwoFASecret: "S"}
	require.NoError(t, s.Update(ctx, updated))

	found, err := s.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, found.TwoFAEnabled)
	assert.Equal(t, "S", found.TwoFASecret)

	assert.ErrorIs(t, s.Update(ctx, &core.User{Email: "nobody@x.com"}), core.ErrUserNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &core.User{Email: "a@x.com"}))

	found, err := s.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	// Mutating the returned record must not leak into the store
	found.TwoFAEnabled = true

	again, err := s.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, again.TwoFAEnabled)
}
