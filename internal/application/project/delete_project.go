package project

import (
	"context"

	"github.com/Sloan357/task-management-api/internal/application/guard"
	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

type DeleteProject struct {
	projects ports.ProjectRepository
	tx       ports.Transactor
}

func NewDeleteProject(projects ports.ProjectRepository, tx ports.Transactor) *DeleteProject {
	return &DeleteProject{projects: projects, tx: tx}
}

// Execute removes the project. The repository detaches the project's tasks
// (project id nulled) and deletes the row in the same transaction; the
// tasks themselves survive.
func (uc *DeleteProject) Execute(ctx context.Context, requester domain.UserID, id domain.ProjectID) error {
	return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := guard.Resolve(ctx, uc.projects.GetByID, id, requester, domerrors.ErrProjectNotFound)
		if err != nil {
			return err
		}
		return uc.projects.Delete(ctx, p.ID)
	})
}
