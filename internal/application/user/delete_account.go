package user

import (
	"context"

	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

// DeleteAccount removes a user and everything they own. The cascade is an
// explicit multi-step transaction (tasks, then projects, then the user),
// not an implicit store behavior.
type DeleteAccount struct {
	users    ports.UserRepository
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	tx       ports.Transactor
}

func NewDeleteAccount(users ports.UserRepository, projects ports.ProjectRepository, tasks ports.TaskRepository, tx ports.Transactor) *DeleteAccount {
	return &DeleteAccount{users: users, projects: projects, tasks: tasks, tx: tx}
}

func (uc *DeleteAccount) Execute(ctx context.Context, requester domain.UserID) error {
	return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := uc.users.GetByID(ctx, requester)
		if err != nil {
			return err
		}
		if u == nil {
			return domerrors.ErrUserNotFound
		}
		if err := uc.tasks.DeleteByOwner(ctx, requester); err != nil {
			return err
		}
		if err := uc.projects.DeleteByOwner(ctx, requester); err != nil {
			return err
		}
		return uc.users.Delete(ctx, requester)
	})
}
