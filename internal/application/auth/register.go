package auth

import (
	"context"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

type RegisterUser struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewRegisterUser(users ports.UserRepository, hasher ports.PasswordHasher) *RegisterUser {
	return &RegisterUser{users: users, hasher: hasher}
}

// Execute creates a user with a hashed credential. Username and email must
// be unique; the store's unique indexes back the pre-checks here, and a
// violation surfaces as the same conflict error.
func (uc *RegisterUser) Execute(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if input.Username == "" || utf8.RuneCountInString(input.Username) > 50 || !emailRegex.MatchString(input.Email) {
		return nil, domerrors.ErrValidation
	}
	if existing, err := uc.users.GetByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domerrors.ErrUserExists
	}
	if existing, err := uc.users.GetByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domerrors.ErrUserExists
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
