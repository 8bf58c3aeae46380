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
	insertTaskSQL = `INSERT INTO tasks
		(id, user_id, project_id, title, description, status, priority, due_date, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	selectTaskSQL = `SELECT id, user_id, project_id, title, description, status, priority, due_date, tags, created_at, updated_at
		FROM tasks`
	updateTaskSQL = `UPDATE tasks SET project_id = $2, title = $3, description = $4, status = $5,
		priority = $6, due_date = $7, tags = $8, updated_at = $9 WHERE id = $1`
	deleteTaskSQL       = `DELETE FROM tasks WHERE id = $1`
	deleteOwnerTasksSQL = `DELETE FROM tasks WHERE user_id = $1`
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := querier(ctx, r.pool).Exec(ctx, insertTaskSQL,
		task.ID.UUID, task.OwnerID.UUID, projectUUID(task.ProjectID), task.Title, task.Description,
		string(task.Status), string(task.Priority), task.DueDate, task.Tags,
		task.CreatedAt, task.UpdatedAt)
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	row := querier(ctx, r.pool).QueryRow(ctx, selectTaskSQL+` WHERE id = $1`, id.UUID)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, owner domain.UserID) ([]*domain.Task, error) {
	return r.list(ctx, selectTaskSQL+` WHERE user_id = $1 ORDER BY created_at DESC`, owner.UUID)
}

func (r *TaskRepository) ListByProject(ctx context.Context, owner domain.UserID, project domain.ProjectID) ([]*domain.Task, error) {
	return r.list(ctx,
		selectTaskSQL+` WHERE user_id = $1 AND project_id = $2 ORDER BY created_at DESC`,
		owner.UUID, project.UUID)
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	_, err := querier(ctx, r.pool).Exec(ctx, updateTaskSQL,
		task.ID.UUID, projectUUID(task.ProjectID), task.Title, task.Description,
		string(task.Status), string(task.Priority), task.DueDate, task.Tags, task.UpdatedAt)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id domain.TaskID) error {
	_, err := querier(ctx, r.pool).Exec(ctx, deleteTaskSQL, id.UUID)
	return err
}

func (r *TaskRepository) DeleteByOwner(ctx context.Context, owner domain.UserID) error {
	_, err := querier(ctx, r.pool).Exec(ctx, deleteOwnerTasksSQL, owner.UUID)
	return err
}

func (r *TaskRepository) list(ctx context.Context, sql string, args ...any) ([]*domain.Task, error) {
	rows, err := querier(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		id      uuid.UUID
		owner   uuid.UUID
		project *uuid.UUID
		status  string
		prio    string
		t       domain.Task
	)
	err := row.Scan(&id, &owner, &project, &t.Title, &t.Description, &status, &prio,
		&t.DueDate, &t.Tags, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.ID = domain.NewTaskID(id)
	t.OwnerID = domain.NewUserID(owner)
	if project != nil {
		pid := domain.NewProjectID(*project)
		t.ProjectID = &pid
	}
	t.Status = domain.TaskStatus(status)
	t.Priority = domain.TaskPriority(prio)
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.DueDate != nil {
		utc := t.DueDate.In(time.UTC)
		t.DueDate = &utc
	}
	t.CreatedAt = t.CreatedAt.In(time.UTC)
	t.UpdatedAt = t.UpdatedAt.In(time.UTC)
	return &t, nil
}

func projectUUID(id *domain.ProjectID) *uuid.UUID {
	if id == nil {
		return nil
	}
	return &id.UUID
}

var _ ports.TaskRepository = (*TaskRepository)(nil)
