package ports

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// TokenIssuer issues and validates access tokens for authenticated users.
type TokenIssuer interface {
	IssueAccessToken(userID string, expiresInSeconds int64) (string, error)
	ValidateAccessToken(token string) (userID string, err error)
}
