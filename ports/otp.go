package ports

// OTPEngine generates TOTP shared secrets and validates submitted codes
type OTPEngine interface {
	// GenerateSecret produces a fresh base32 shared secret together with
	// the otpauth:// enrollment URI for the given account.
	GenerateSecret(account string) (secret string, uri string, err error)

	// Check reports whether code is valid for secret in the current time
	// window, with one step of tolerance either side for clock skew.
	Check(code, secret string) bool
}
