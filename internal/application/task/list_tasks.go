package task

import (
	"context"
	"time"

	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
)

// ListTasks builds a filtered, searched, sorted view of the requester's
// tasks. The base set is owner-scoped before any criteria apply, so
// filtering by a project id the requester does not own yields an empty
// result rather than an error.
type ListTasks struct {
	tasks ports.TaskRepository
	now   func() time.Time
}

func NewListTasks(tasks ports.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks, now: time.Now}
}

func (uc *ListTasks) Execute(ctx context.Context, requester domain.UserID, criteria Criteria) ([]*domain.Task, error) {
	if criteria.SortBy == "" {
		criteria.SortBy = SortByCreatedAt
	}
	if criteria.SortOrder == "" {
		criteria.SortOrder = SortDesc
	}
	all, err := uc.tasks.ListByOwner(ctx, requester)
	if err != nil {
		return nil, err
	}
	return Apply(all, criteria, uc.now()), nil
}
