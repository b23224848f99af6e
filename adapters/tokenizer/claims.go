package tokenizer

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the claims of a full session token
type SessionClaims struct {
	jwt.RegisteredClaims
}

// ChallengeClaims are the claims of a two-factor challenge token.
// The Step2 marker keeps the payload shape distinct from a session
// token on top of the audience split, mirroring how the login step-2
// flow is namespaced.
type ChallengeClaims struct {
	jwt.RegisteredClaims
	Step2 bool `json:"loginStep2Verification"`
}
