package ports

import (
	"context"

	"github.com/layer-3/vouch/core"
)

// UserStore persists user records keyed by email
type UserStore interface {
	// Create stores a new user. Returns core.ErrUserExists if the email is taken.
	Create(ctx context.Context, user *core.User) error

	// FindByEmail returns the user for the given email, or core.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*core.User, error)

	// Update overwrites the stored record for user.Email.
	// Returns core.ErrUserNotFound if no such record exists.
	Update(ctx context.Context, user *core.User) error
}
