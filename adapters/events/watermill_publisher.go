package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/layer-3/vouch/ports"
)

// Topics for auth lifecycle events
const (
	TopicSignedUp      = "vouch.user_signed_up"
	TopicTwoFAEnabled  = "vouch.2fa_enabled"
	TopicTwoFADisabled = "vouch.2fa_disabled"
)

// AuthEvent is the payload published for every auth lifecycle event
type AuthEvent struct {
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// WatermillPublisher implements the EventPublisher interface using Watermill
type WatermillPublisher struct {
	publisher message.Publisher
}

// NewWatermillPublisher creates a new Watermill publisher
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{publisher: publisher}
}

// PublishSignedUp publishes a user-signed-up event
func (p *WatermillPublisher) PublishSignedUp(ctx context.Context, email string) error {
	return p.publish(TopicSignedUp, email)
}

// PublishTwoFAEnabled publishes a 2FA-enabled event
func (p *WatermillPublisher) PublishTwoFAEnabled(ctx context.Context, email string) error {
	return p.publish(TopicTwoFAEnabled, email)
}

// PublishTwoFADisabled publishes a 2FA-disabled event
func (p *WatermillPublisher) PublishTwoFADisabled(ctx context.Context, email string) error {
	return p.publish(TopicTwoFADisabled, email)
}

func (p *WatermillPublisher) publish(topic, email string) error {
	payload, err := json.Marshal(AuthEvent{
		Email:      email,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(uuid.New().String(), payload)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
