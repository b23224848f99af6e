package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/layer-3/vouch/core"
	"github.com/layer-3/vouch/ports"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis implementation of the UserStore interface.
// Each user is stored as a JSON record under a prefixed key.
type RedisStore struct {
	client *redis.Client
	prefix string
}

type userRecord struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Age          int    `json:"age"`
	TwoFAEnabled bool   `json:"twofa_enabled"`
	TwoFASecret  string `json:"twofa_secret"`
}

// NewRedisStore creates a new Redis user store
func NewRedisStore(client *redis.Client) ports.UserStore {
	return &RedisStore{
		client: client,
		prefix: "vouch:user:",
	}
}

// Create stores a new user record. SetNX enforces email uniqueness.
func (s *RedisStore) Create(ctx context.Context, user *core.User) error {
	payload, err := json.Marshal(recordFromUser(user))
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	ok, err := s.client.SetNX(ctx, s.prefix+user.Email, payload, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if !ok {
		return core.ErrUserExists
	}

	return nil
}

// FindByEmail returns the user stored under the given email
func (s *RedisStore) FindByEmail(ctx context.Context, email string) (*core.User, error) {
	payload, err := s.client.Get(ctx, s.prefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, core.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	var rec userRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return rec.toUser(), nil
}

// Update overwrites the record for user.Email. SetXX refuses to write a
// record that was never created.
func (s *RedisStore) Update(ctx context.Context, user *core.User) error {
	payload, err := json.Marshal(recordFromUser(user))
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	ok, err := s.client.SetXX(ctx, s.prefix+user.Email, payload, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if !ok {
		return core.ErrUserNotFound
	}

	return nil
}

func recordFromUser(u *core.User) userRecord {
	return userRecord{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Age:          u.Age,
		TwoFAEnabled: u.TwoFAEnabled,
		TwoFASecret:  u.TwoFASecret,
	}
}

func (r userRecord) toUser() *core.User {
	return &core.User{
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Age:          r.Age,
		TwoFAEnabled: r.TwoFAEnabled,
		TwoFASecret:  r.TwoFASecret,
	}
}
