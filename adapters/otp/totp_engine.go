package otp

import (
	"fmt"
	"strings"

	"github.com/layer-3/vouch/ports"
	"github.com/pquerna/otp/totp"
)

// TOTPEngine implements the OTPEngine interface with RFC 6238 defaults:
// SHA1, 6 digits, 30-second period.
type TOTPEngine struct {
	issuer string
}

// NewTOTPEngine creates a TOTP engine. The issuer is the service name
// shown in authenticator apps.
func NewTOTPEngine(issuer string) ports.OTPEngine {
	return &TOTPEngine{issuer: issuer}
}

// GenerateSecret produces a fresh base32 shared secret and the
// otpauth:// URI to encode into a scannable enrollment code.
func (e *TOTPEngine) GenerateSecret(account string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      e.issuer,
		AccountName: account,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate TOTP secret: %w", err)
	}

	return key.Secret(), key.URL(), nil
}

// Check validates a submitted code against the secret for the current
// time window, tolerating one step of clock skew either side.
// Whitespace is stripped first; authenticator apps often display codes
// with a separator space.
func (e *TOTPEngine) Check(code, secret string) bool {
	code = strings.ReplaceAll(code, " ", "")
	return totp.Validate(code, secret)
}
