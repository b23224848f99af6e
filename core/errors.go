package core

import "errors"

var (
	// ErrUserExists is returned when signing up an email that is already registered
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a user lookup finds no record
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for a bad email or password.
	// Both causes map to the same error so callers cannot probe which
	// emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenExpired is returned when a token has expired
	ErrTokenExpired = errors.New("token has expired")

	// ErrInvalidToken is returned when a token fails signature or audience checks
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidOTP is returned when a one-time passcode fails validation
	ErrInvalidOTP = errors.New("invalid one-time passcode")

	// ErrTwoFAAlreadyEnabled is returned when enrollment starts for an
	// account that already has the second factor enabled
	ErrTwoFAAlreadyEnabled = errors.New("two-factor authentication already enabled")
)
