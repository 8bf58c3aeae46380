package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
)

const (
	insertProjectSQL = `INSERT INTO projects (id, user_id, name, description, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	selectProjectSQL = `SELECT id, user_id, name, description, color, created_at, updated_at FROM projects`
	updateProjectSQL = `UPDATE projects SET name = $2, description = $3, color = $4, updated_at = $5
		WHERE id = $1`
	detachProjectTasksSQL  = `UPDATE tasks SET project_id = NULL WHERE project_id = $1`
	deleteProjectSQL       = `DELETE FROM projects WHERE id = $1`
	deleteOwnerProjectsSQL = `DELETE FROM projects WHERE user_id = $1`
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	_, err := querier(ctx, r.pool).Exec(ctx, insertProjectSQL,
		project.ID.UUID, project.OwnerID.UUID, project.Name, project.Description, project.Color,
		project.CreatedAt, project.UpdatedAt)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	row := querier(ctx, r.pool).QueryRow(ctx, selectProjectSQL+` WHERE id = $1`, id.UUID)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, owner domain.UserID) ([]*domain.Project, error) {
	rows, err := querier(ctx, r.pool).Query(ctx,
		selectProjectSQL+` WHERE user_id = $1 ORDER BY created_at DESC`, owner.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	_, err := querier(ctx, r.pool).Exec(ctx, updateProjectSQL,
		project.ID.UUID, project.Name, project.Description, project.Color, project.UpdatedAt)
	return err
}

// Delete detaches the project's tasks and removes the row. Callers wrap
// this in the Transactor so the detach and the delete commit together.
func (r *ProjectRepository) Delete(ctx context.Context, id domain.ProjectID) error {
	q := querier(ctx, r.pool)
	if _, err := q.Exec(ctx, detachProjectTasksSQL, id.UUID); err != nil {
		return err
	}
	_, err := q.Exec(ctx, deleteProjectSQL, id.UUID)
	return err
}

func (r *ProjectRepository) DeleteByOwner(ctx context.Context, owner domain.UserID) error {
	_, err := querier(ctx, r.pool).Exec(ctx, deleteOwnerProjectsSQL, owner.UUID)
	return err
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var (
		id    uuid.UUID
		owner uuid.UUID
		p     domain.Project
	)
	if err := row.Scan(&id, &owner, &p.Name, &p.Description, &p.Color, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.ID = domain.NewProjectID(id)
	p.OwnerID = domain.NewUserID(owner)
	p.CreatedAt = p.CreatedAt.In(time.UTC)
	p.UpdatedAt = p.UpdatedAt.In(time.UTC)
	return &p, nil
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)
