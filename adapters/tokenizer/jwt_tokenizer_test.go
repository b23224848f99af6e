package tokenizer

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layer-3/vouch/core"
)

var testSecret = []byte("test-secret")

func TestSessionTokenRoundTrip(t *testing.T) {
	tk := NewJWTTokenizer(testSecret)

	token, err := tk.IssueSession("a@x.com")
	require.NoError(t, err)

	email, err := tk.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestChallengeTokenRoundTrip(t *testing.T) {
	tk := NewJWTTokenizer(testSecret)

	token, err := tk.IssueChallenge("a@x.com")
	require.NoError(t, err)

	email, err := tk.VerifyChallenge(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestAudiencesAreNotInterchangeable(t *testing.T) {
	tk := NewJWTTokenizer(testSecret)

	session, err := tk.IssueSession("a@x.com")
	require.NoError(t, err)
	challenge, err := tk.IssueChallenge("a@x.com")
	require.NoError(t, err)

	_, err = tk.VerifySession(challenge)
	assert.ErrorIs(t, err, core.ErrInvalidToken)

	_, err = tk.VerifyChallenge(session)
	assert.ErrorIs(t, err, core.ErrInvalidToken)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	tk := NewJWTTokenizer(testSecret)
	other := NewJWTTokenizer([]byte("a different secret"))

	token, err := other.IssueSession("a@x.com")
	require.NoError(t, err)

	_, err = tk.VerifySession(token)
	assert.ErrorIs(t, err, core.ErrInvalidToken)
}

func TestVerifyRejectsExpiredChallenge(t *testing.T) {
	tk := NewJWTTokenizer(testSecret)

	// Craft a challenge token whose expiry is already in the past
	claims := ChallengeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a@x.com",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-10 * time.Minute)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-5 * time.Minute)),
			Audience:  jwt.ClaimStrings{AudienceChallenge},
		},
		Step2: true,
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = tk.VerifyChallenge(expired)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	tk := NewJWTTokenizer(testSecret)

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Audience: jwt.ClaimStrings{AudienceSession},
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = tk.VerifySession(token)
	assert.ErrorIs(t, err, core.ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tk := NewJWTTokenizer(testSecret)

	_, err := tk.VerifySession("not-a-jwt")
	assert.ErrorIs(t, err, core.ErrInvalidToken)
}

func TestSessionTokenHasNoExpiry(t *testing.T) {
	tk := NewJWTTokenizer(testSecret)

	token, err := tk.IssueSession("a@x.com")
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(*SessionClaims)
	assert.Nil(t, claims.ExpiresAt)
}
