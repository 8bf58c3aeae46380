package project

import (
	"context"

	"github.com/Sloan357/task-management-api/internal/application/guard"
	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

type GetProject struct {
	projects ports.ProjectRepository
}

func NewGetProject(projects ports.ProjectRepository) *GetProject {
	return &GetProject{projects: projects}
}

func (uc *GetProject) Execute(ctx context.Context, requester domain.UserID, id domain.ProjectID) (*domain.Project, error) {
	return guard.Resolve(ctx, uc.projects.GetByID, id, requester, domerrors.ErrProjectNotFound)
}
