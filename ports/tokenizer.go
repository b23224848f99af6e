package ports

// Tokenizer issues and verifies the two token kinds used by the service.
// Session tokens and two-factor challenge tokens live in separate claim
// namespaces: a verifier only ever accepts its own kind.
type Tokenizer interface {
	// Session token operations
	IssueSession(email string) (string, error)
	VerifySession(token string) (email string, err error)

	// Two-factor challenge token operations
	IssueChallenge(email string) (string, error)
	VerifyChallenge(token string) (email string, err error)
}
