package store

import (
	"context"
	"sync"

	"github.com/layer-3/vouch/core"
	"github.com/layer-3/vouch/ports"
)

// MemoryStore is an in-memory implementation of the UserStore interface
type MemoryStore struct {
	users map[string]core.User
	mu    sync.RWMutex
}

// NewMemoryStore creates a new in-memory user store
func NewMemoryStore() ports.UserStore {
	return &MemoryStore{
		users: make(map[string]core.User),
	}
}

// Create stores a new user record
func (s *MemoryStore) Create(ctx context.Context, user *core.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return core.ErrUserExists
	}

	s.users[user.Email] = *user
	return nil
}

// FindByEmail returns a copy of the stored user record
func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return nil, core.ErrUserNotFound
	}

	return &user, nil
}

// Update overwrites the stored record for user.Email
func (s *MemoryStore) Update(ctx context.Context, user *core.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; !exists {
		return core.ErrUserNotFound
	}

	s.users[user.Email] = *user
	return nil
}
