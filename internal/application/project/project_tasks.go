package project

import (
	"context"

	"github.com/Sloan357/task-management-api/internal/application/guard"
	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

// ProjectTasks lists the tasks grouped under one project. Unlike the plain
// project_id filter on task listing, this resolves the project through the
// ownership guard first, so a foreign project id is a not-found error.
type ProjectTasks struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

func NewProjectTasks(projects ports.ProjectRepository, tasks ports.TaskRepository) *ProjectTasks {
	return &ProjectTasks{projects: projects, tasks: tasks}
}

func (uc *ProjectTasks) Execute(ctx context.Context, requester domain.UserID, id domain.ProjectID) ([]*domain.Task, error) {
	p, err := guard.Resolve(ctx, uc.projects.GetByID, id, requester, domerrors.ErrProjectNotFound)
	if err != nil {
		return nil, err
	}
	return uc.tasks.ListByProject(ctx, requester, p.ID)
}
