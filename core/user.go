package core

// User represents a registered account
type User struct {
	Email        string // Unique identifier, immutable after signup
	PasswordHash string // Bcrypt digest, only ever compared through the hasher
	Age          int    // Pass-through profile attribute
	TwoFAEnabled bool   // Whether the TOTP second factor is enforced at login
	TwoFASecret  string // Shared TOTP secret; empty unless enrolled or enrollment pending
}

// Profile is the projection of a User that is safe to return to callers.
// It never carries the password digest or the TOTP secret.
type Profile struct {
	Email        string `json:"email"`
	Age          int    `json:"age"`
	TwoFAEnabled bool   `json:"twofaEnabled"`
}

// Profile returns the caller-facing projection of the user.
func (u *User) Profile() Profile {
	return Profile{
		Email:        u.Email,
		Age:          u.Age,
		TwoFAEnabled: u.TwoFAEnabled,
	}
}
