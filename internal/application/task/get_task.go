package task

import (
	"context"

	"github.com/Sloan357/task-management-api/internal/application/guard"
	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

type GetTask struct {
	tasks ports.TaskRepository
}

func NewGetTask(tasks ports.TaskRepository) *GetTask {
	return &GetTask{tasks: tasks}
}

func (uc *GetTask) Execute(ctx context.Context, requester domain.UserID, id domain.TaskID) (*domain.Task, error) {
	return guard.Resolve(ctx, uc.tasks.GetByID, id, requester, domerrors.ErrTaskNotFound)
}
