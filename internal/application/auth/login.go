package auth

import (
	"context"

	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

// DefaultAccessExpiry is used when config supplies no expiry (30 min).
const DefaultAccessExpiry = 1800

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken string
	ExpiresIn   int64
	User        *domain.User
}

type Login struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
	accessExp int64
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, accessExp int64) *Login {
	if accessExp <= 0 {
		accessExp = DefaultAccessExpiry
	}
	return &Login{users: users, hasher: hasher, issuer: issuer, accessExp: accessExp}
}

// Execute verifies credentials and issues a bearer token. Unknown username
// and wrong password produce the same error.
func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	token, err := uc.issuer.IssueAccessToken(user.ID.String(), uc.accessExp)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token, ExpiresIn: uc.accessExp, User: user}, nil
}
