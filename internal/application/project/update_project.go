package project

import (
	"context"
	"time"

	"github.com/Sloan357/task-management-api/internal/application/guard"
	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

// UpdateProjectInput carries partial-update fields. Explicit null clears
// description or color; name cannot be nulled.
type UpdateProjectInput struct {
	Name        domain.Optional[string]
	Description domain.Optional[string]
	Color       domain.Optional[string]
}

type UpdateProject struct {
	projects ports.ProjectRepository
	tx       ports.Transactor
}

func NewUpdateProject(projects ports.ProjectRepository, tx ports.Transactor) *UpdateProject {
	return &UpdateProject{projects: projects, tx: tx}
}

func (uc *UpdateProject) Execute(ctx context.Context, requester domain.UserID, id domain.ProjectID, input UpdateProjectInput) (*domain.Project, error) {
	if input.Name.IsNull() {
		return nil, domerrors.ErrValidation
	}
	if name, ok := input.Name.Get(); ok && !validName(name) {
		return nil, domerrors.ErrValidation
	}
	if color, ok := input.Color.Get(); ok && !domain.ValidColor(color) {
		return nil, domerrors.ErrValidation
	}

	var updated *domain.Project
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := guard.Resolve(ctx, uc.projects.GetByID, id, requester, domerrors.ErrProjectNotFound)
		if err != nil {
			return err
		}
		if v, ok := input.Name.Get(); ok {
			p.Name = v
		}
		if input.Description.IsSet() {
			if v, ok := input.Description.Get(); ok {
				p.Description = &v
			} else {
				p.Description = nil
			}
		}
		if input.Color.IsSet() {
			if v, ok := input.Color.Get(); ok {
				p.Color = &v
			} else {
				p.Color = nil
			}
		}
		p.UpdatedAt = time.Now().UTC()
		if err := uc.projects.Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
