package ports

import "context"

// EventPublisher publishes auth lifecycle events to notify other services
type EventPublisher interface {
	PublishSignedUp(ctx context.Context, email string) error
	PublishTwoFAEnabled(ctx context.Context, email string) error
	PublishTwoFADisabled(ctx context.Context, email string) error
}
