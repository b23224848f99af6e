package tokenizer

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/layer-3/vouch/core"
	"github.com/layer-3/vouch/ports"
)

// Audience values discriminate the two token kinds. A verifier only
// accepts its own audience, so a challenge token can never pass for a
// session token or vice versa.
const AudienceSession = "vouch:session"
const AudienceChallenge = "vouch:2fa"

// DefaultChallengeExpiry bounds how long a login may sit between the
// password step and the OTP step.
const DefaultChallengeExpiry = 5 * time.Minute

// JWTTokenizer implements the Tokenizer interface using HS256 JWTs
type JWTTokenizer struct {
	secret []byte
}

// NewJWTTokenizer creates a new JWT tokenizer signing with the given HMAC secret
func NewJWTTokenizer(secret []byte) ports.Tokenizer {
	return &JWTTokenizer{secret: secret}
}

// IssueSession signs a session token for the given email.
// Session tokens carry no expiry; they are discarded by the caller.
func (j *JWTTokenizer) IssueSession(email string) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  email,
			ID:       uuid.New().String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Audience: jwt.ClaimStrings{AudienceSession},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signedToken, nil
}

// IssueChallenge signs a short-lived two-factor challenge token. It lets
// the caller finish the OTP step without re-submitting the password, and
// is rejected by VerifySession.
func (j *JWTTokenizer) IssueChallenge(email string) (string, error) {
	now := time.Now()
	claims := ChallengeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(DefaultChallengeExpiry)),
			Audience:  jwt.ClaimStrings{AudienceChallenge},
		},
		Step2: true,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign challenge token: %w", err)
	}

	return signedToken, nil
}

// VerifySession parses a session token and returns the email it asserts
func (j *JWTTokenizer) VerifySession(tokenStr string) (string, error) {
	return j.verify(tokenStr, &SessionClaims{}, AudienceSession)
}

// VerifyChallenge parses a challenge token and returns the email it asserts
func (j *JWTTokenizer) VerifyChallenge(tokenStr string) (string, error) {
	return j.verify(tokenStr, &ChallengeClaims{}, AudienceChallenge)
}

func (j *JWTTokenizer) verify(tokenStr string, claims jwt.Claims, audience string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithAudience(audience))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", core.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", core.ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", core.ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", core.ErrInvalidToken
	}

	return subject, nil
}
