package task

import (
	"context"

	"github.com/Sloan357/task-management-api/internal/application/guard"
	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

type DeleteTask struct {
	tasks ports.TaskRepository
	tx    ports.Transactor
}

func NewDeleteTask(tasks ports.TaskRepository, tx ports.Transactor) *DeleteTask {
	return &DeleteTask{tasks: tasks, tx: tx}
}

func (uc *DeleteTask) Execute(ctx context.Context, requester domain.UserID, id domain.TaskID) error {
	return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := guard.Resolve(ctx, uc.tasks.GetByID, id, requester, domerrors.ErrTaskNotFound)
		if err != nil {
			return err
		}
		return uc.tasks.Delete(ctx, t.ID)
	})
}
