package task

import (
	"context"
	"time"

	"github.com/Sloan357/task-management-api/internal/application/guard"
	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

// UpdateTaskInput carries partial-update fields: unset fields are left
// untouched. Explicit null clears description, due date, tags, or the
// project link; title, status, and priority cannot be nulled.
type UpdateTaskInput struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
	Status      domain.Optional[domain.TaskStatus]
	Priority    domain.Optional[domain.TaskPriority]
	DueDate     domain.Optional[time.Time]
	Tags        domain.Optional[[]string]
	ProjectID   domain.Optional[domain.ProjectID]
}

type UpdateTask struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	tx       ports.Transactor
}

func NewUpdateTask(tasks ports.TaskRepository, projects ports.ProjectRepository, tx ports.Transactor) *UpdateTask {
	return &UpdateTask{tasks: tasks, projects: projects, tx: tx}
}

// Execute applies only the fields present in input. Guard resolution, the
// project linkage check, and the write happen inside one transaction; any
// precondition failure aborts before the write. UpdatedAt advances even
// when the field set is empty.
func (uc *UpdateTask) Execute(ctx context.Context, requester domain.UserID, id domain.TaskID, input UpdateTaskInput) (*domain.Task, error) {
	if input.Title.IsNull() || input.Status.IsNull() || input.Priority.IsNull() {
		return nil, domerrors.ErrValidation
	}
	if title, ok := input.Title.Get(); ok && !validTitle(title) {
		return nil, domerrors.ErrValidation
	}
	if status, ok := input.Status.Get(); ok && !status.Valid() {
		return nil, domerrors.ErrValidation
	}
	if priority, ok := input.Priority.Get(); ok && !priority.Valid() {
		return nil, domerrors.ErrValidation
	}

	var updated *domain.Task
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := guard.Resolve(ctx, uc.tasks.GetByID, id, requester, domerrors.ErrTaskNotFound)
		if err != nil {
			return err
		}
		if pid, ok := input.ProjectID.Get(); ok {
			if _, err := guard.Resolve(ctx, uc.projects.GetByID, pid, requester, domerrors.ErrProjectNotFound); err != nil {
				return err
			}
			p := pid
			t.ProjectID = &p
		} else if input.ProjectID.IsNull() {
			t.ProjectID = nil
		}
		if v, ok := input.Title.Get(); ok {
			t.Title = v
		}
		if input.Description.IsSet() {
			if v, ok := input.Description.Get(); ok {
				t.Description = &v
			} else {
				t.Description = nil
			}
		}
		if v, ok := input.Status.Get(); ok {
			t.Status = v
		}
		if v, ok := input.Priority.Get(); ok {
			t.Priority = v
		}
		if input.DueDate.IsSet() {
			if v, ok := input.DueDate.Get(); ok {
				t.DueDate = &v
			} else {
				t.DueDate = nil
			}
		}
		if input.Tags.IsSet() {
			if v, ok := input.Tags.Get(); ok {
				t.Tags = v
			} else {
				t.Tags = []string{}
			}
		}
		t.UpdatedAt = time.Now().UTC()
		if err := uc.tasks.Update(ctx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
