package ports

import (
	"context"

	"github.com/Sloan357/task-management-api/internal/domain"
)

// UserRepository defines persistence for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Delete removes the user row. Owned tasks and projects are removed by
	// DeleteByOwner calls in the same transaction; the schema's cascading
	// foreign keys are a backstop, not the mechanism.
	Delete(ctx context.Context, id domain.UserID) error
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	ListByOwner(ctx context.Context, owner domain.UserID) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	// Delete removes the project and detaches its tasks (project id set to
	// null) as one unit.
	Delete(ctx context.Context, id domain.ProjectID) error
	DeleteByOwner(ctx context.Context, owner domain.UserID) error
}

// TaskRepository defines persistence for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id domain.TaskID) (*domain.Task, error)
	// ListByOwner returns every task owned by owner, newest first. All task
	// reads start from this owner-scoped base set.
	ListByOwner(ctx context.Context, owner domain.UserID) ([]*domain.Task, error)
	ListByProject(ctx context.Context, owner domain.UserID, project domain.ProjectID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id domain.TaskID) error
	DeleteByOwner(ctx context.Context, owner domain.UserID) error
}

// Transactor supplies the transaction boundary for multi-step mutations:
// guard resolution and the dependent write are observed as a unit.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
