package task

import (
	"context"
	"time"

	"github.com/Sloan357/task-management-api/internal/application/guard"
	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

type CompleteTask struct {
	tasks ports.TaskRepository
	tx    ports.Transactor
}

func NewCompleteTask(tasks ports.TaskRepository, tx ports.Transactor) *CompleteTask {
	return &CompleteTask{tasks: tasks, tx: tx}
}

// Execute unconditionally marks the task done. Completing an already-done
// task is a state no-op but still advances UpdatedAt.
func (uc *CompleteTask) Execute(ctx context.Context, requester domain.UserID, id domain.TaskID) (*domain.Task, error) {
	var completed *domain.Task
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := guard.Resolve(ctx, uc.tasks.GetByID, id, requester, domerrors.ErrTaskNotFound)
		if err != nil {
			return err
		}
		t.Status = domain.StatusDone
		t.UpdatedAt = time.Now().UTC()
		if err := uc.tasks.Update(ctx, t); err != nil {
			return err
		}
		completed = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}
