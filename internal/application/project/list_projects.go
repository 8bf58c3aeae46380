package project

import (
	"context"

	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
)

type ListProjects struct {
	projects ports.ProjectRepository
}

func NewListProjects(projects ports.ProjectRepository) *ListProjects {
	return &ListProjects{projects: projects}
}

// Execute returns the requester's projects, newest first.
func (uc *ListProjects) Execute(ctx context.Context, requester domain.UserID) ([]*domain.Project, error) {
	return uc.projects.ListByOwner(ctx, requester)
}
