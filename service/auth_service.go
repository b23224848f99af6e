// Package service implements the authentication state machine: signup,
// password login, the optional TOTP second step, and second-factor
// enrollment. It is stateless between requests; every operation is a
// round-trip to the user store plus pure crypto, so concurrent logins
// never contend on anything in-process.
//
// Known gap: there is no attempt limiting on password or OTP checks,
// and a code stays valid for its whole 30-second window.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/layer-3/vouch/core"
	"github.com/layer-3/vouch/ports"
)

// AuthService handles authentication business logic
type AuthService struct {
	store     ports.UserStore
	hasher    ports.PasswordHasher
	otp       ports.OTPEngine
	tokenizer ports.Tokenizer
	eventPub  ports.EventPublisher
	log       *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	store ports.UserStore,
	hasher ports.PasswordHasher,
	otp ports.OTPEngine,
	tokenizer ports.Tokenizer,
	eventPub ports.EventPublisher,
	log *slog.Logger,
) *AuthService {
	return &AuthService{
		store:     store,
		hasher:    hasher,
		otp:       otp,
		tokenizer: tokenizer,
		eventPub:  eventPub,
		log:       log,
	}
}

// LoginResult is the outcome of a successful password check. Exactly one
// of SessionToken and ChallengeToken is set: accounts with the second
// factor enabled get a challenge token and no session credential.
type LoginResult struct {
	TwoFAEnabled   bool
	SessionToken   string
	ChallengeToken string
}

// Enrollment carries a freshly generated TOTP secret and its
// otpauth:// URI for out-of-band rendering.
type Enrollment struct {
	Secret string
	URI    string
}

// Signup registers a new user with the second factor disabled.
// Returns core.ErrUserExists if the email is already registered.
func (s *AuthService) Signup(ctx context.Context, email, password string, age int) (core.Profile, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return core.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &core.User{
		Email:        email,
		PasswordHash: digest,
		Age:          age,
	}

	if err := s.store.Create(ctx, user); err != nil {
		return core.Profile{}, err
	}

	if err := s.eventPub.PublishSignedUp(ctx, email); err != nil {
		s.log.Warn("failed to publish signup event", "email", email, "error", err)
	}

	return user.Profile(), nil
}

// Login checks the password and either authenticates directly or, when
// the second factor is enabled, hands back a short-lived challenge
// token instead of a session credential.
//
// An unknown email and a wrong password both return
// core.ErrInvalidCredentials so callers cannot tell them apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, core.ErrInvalidCredentials
	}

	if user.TwoFAEnabled {
		challenge, err := s.tokenizer.IssueChallenge(user.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to issue challenge token: %w", err)
		}
		return &LoginResult{TwoFAEnabled: true, ChallengeToken: challenge}, nil
	}

	session, err := s.tokenizer.IssueSession(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &LoginResult{SessionToken: session}, nil
}

// CompleteSecondFactor finishes a two-step login. The challenge token
// proves the password step happened; the code proves possession of the
// enrolled authenticator. A session token passed in place of a
// challenge token fails verification on its audience.
func (s *AuthService) CompleteSecondFactor(ctx context.Context, challengeToken, code string) (string, error) {
	email, err := s.tokenizer.VerifyChallenge(challengeToken)
	if err != nil {
		return "", err
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return "", core.ErrInvalidToken
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if user.TwoFASecret == "" || !s.otp.Check(code, user.TwoFASecret) {
		return "", core.ErrInvalidOTP
	}

	session, err := s.tokenizer.IssueSession(user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	return session, nil
}

// ResolveSession verifies a session token and loads the user it names.
// The token carries only identity; the profile is always a fresh read.
func (s *AuthService) ResolveSession(ctx context.Context, sessionToken string) (*core.User, error) {
	email, err := s.tokenizer.VerifySession(sessionToken)
	if err != nil {
		return nil, err
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			return nil, core.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return user, nil
}

// BeginEnrollment generates a new TOTP secret for the user and stores
// it pending confirmation; the second factor stays disabled until the
// user proves they can produce a code. Calling this again before
// confirming replaces the pending secret, invalidating the old one.
func (s *AuthService) BeginEnrollment(ctx context.Context, email string) (*Enrollment, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.TwoFAEnabled {
		return nil, core.ErrTwoFAAlreadyEnabled
	}

	secret, uri, err := s.otp.GenerateSecret(user.Email)
	if err != nil {
		return nil, err
	}

	user.TwoFASecret = secret
	if err := s.store.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store pending secret: %w", err)
	}

	return &Enrollment{Secret: secret, URI: uri}, nil
}

// ConfirmEnrollment validates a code against the pending secret and, on
// success, turns the second factor on. Confirming an already-enabled
// account is a no-op success, reported through alreadyEnabled so the
// caller can say so.
func (s *AuthService) ConfirmEnrollment(ctx context.Context, email, code string) (alreadyEnabled bool, err error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.TwoFAEnabled {
		return true, nil
	}

	if user.TwoFASecret == "" || !s.otp.Check(code, user.TwoFASecret) {
		return false, core.ErrInvalidOTP
	}

	user.TwoFAEnabled = true
	if err := s.store.Update(ctx, user); err != nil {
		return false, fmt.Errorf("failed to enable two-factor auth: %w", err)
	}

	if err := s.eventPub.PublishTwoFAEnabled(ctx, email); err != nil {
		s.log.Warn("failed to publish 2fa-enabled event", "email", email, "error", err)
	}

	return false, nil
}

// DisableTwoFA turns the second factor off and clears the stored
// secret. Both fields go in a single record write so the
// enabled/secret pairing holds even when calls race. Idempotent.
func (s *AuthService) DisableTwoFA(ctx context.Context, email string) error {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	user.TwoFAEnabled = false
	user.TwoFASecret = ""
	if err := s.store.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to disable two-factor auth: %w", err)
	}

	if err := s.eventPub.PublishTwoFADisabled(ctx, email); err != nil {
		s.log.Warn("failed to publish 2fa-disabled event", "email", email, "error", err)
	}

	return nil
}
