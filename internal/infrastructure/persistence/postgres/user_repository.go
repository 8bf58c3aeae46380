package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

const (
	insertUserSQL = `INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	selectUserSQL = `SELECT id, username, email, password_hash, created_at, updated_at FROM users`
	deleteUserSQL = `DELETE FROM users WHERE id = $1`
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := querier(ctx, r.pool).Exec(ctx, insertUserSQL,
		user.ID.UUID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if isUniqueViolation(err) {
		return domerrors.ErrUserExists
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.getOne(ctx, selectUserSQL+` WHERE id = $1`, id.UUID)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, selectUserSQL+` WHERE username = $1`, username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, selectUserSQL+` WHERE email = $1`, email)
}

func (r *UserRepository) Delete(ctx context.Context, id domain.UserID) error {
	_, err := querier(ctx, r.pool).Exec(ctx, deleteUserSQL, id.UUID)
	return err
}

func (r *UserRepository) getOne(ctx context.Context, sql string, arg any) (*domain.User, error) {
	var (
		id   uuid.UUID
		u    domain.User
		hash string
	)
	err := querier(ctx, r.pool).QueryRow(ctx, sql, arg).
		Scan(&id, &u.Username, &u.Email, &hash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.ID = domain.NewUserID(id)
	u.PasswordHash = hash
	u.CreatedAt = u.CreatedAt.In(time.UTC)
	u.UpdatedAt = u.UpdatedAt.In(time.UTC)
	return &u, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
