package task

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Sloan357/task-management-api/internal/application/guard"
	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

const maxTitleLength = 200

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     *time.Time
	Tags        []string
	ProjectID   *domain.ProjectID
}

type CreateTask struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	tx       ports.Transactor
}

func NewCreateTask(tasks ports.TaskRepository, projects ports.ProjectRepository, tx ports.Transactor) *CreateTask {
	return &CreateTask{tasks: tasks, projects: projects, tx: tx}
}

// Execute creates a task for requester. A supplied project id must resolve
// to a project owned by the same requester; otherwise the whole operation
// aborts with the project reported as not found and no task is written.
func (uc *CreateTask) Execute(ctx context.Context, requester domain.UserID, input CreateTaskInput) (*domain.Task, error) {
	if input.Status == "" {
		input.Status = domain.StatusTodo
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if !validTitle(input.Title) || !input.Status.Valid() || !input.Priority.Valid() {
		return nil, domerrors.ErrValidation
	}

	var created *domain.Task
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if input.ProjectID != nil {
			if _, err := guard.Resolve(ctx, uc.projects.GetByID, *input.ProjectID, requester, domerrors.ErrProjectNotFound); err != nil {
				return err
			}
		}
		now := time.Now().UTC()
		created = &domain.Task{
			ID:          domain.NewTaskID(uuid.New()),
			OwnerID:     requester,
			ProjectID:   input.ProjectID,
			Title:       input.Title,
			Description: input.Description,
			Status:      input.Status,
			Priority:    input.Priority,
			DueDate:     input.DueDate,
			Tags:        input.Tags,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if created.Tags == nil {
			created.Tags = []string{}
		}
		return uc.tasks.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// validTitle bounds the title to 1..200 characters, counted in runes so
// multibyte titles are not cut short.
func validTitle(title string) bool {
	return title != "" && utf8.RuneCountInString(title) <= maxTitleLength
}
