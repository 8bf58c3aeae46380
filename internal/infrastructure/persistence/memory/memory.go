// Package memory holds an in-memory implementation of the persistence
// ports, used as a test double for use-case and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

// Store keeps users, projects, and tasks in mutex-guarded maps.
type Store struct {
	mu       sync.Mutex
	users    map[domain.UserID]*domain.User
	projects map[domain.ProjectID]*domain.Project
	tasks    map[domain.TaskID]*domain.Task
}

func NewStore() *Store {
	return &Store{
		users:    make(map[domain.UserID]*domain.User),
		projects: make(map[domain.ProjectID]*domain.Project),
		tasks:    make(map[domain.TaskID]*domain.Task),
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() ports.UserRepository { return (*userRepo)(s) }

// Projects returns the project repository view of the store.
func (s *Store) Projects() ports.ProjectRepository { return (*projectRepo)(s) }

// Tasks returns the task repository view of the store.
func (s *Store) Tasks() ports.TaskRepository { return (*taskRepo)(s) }

// WithinTx satisfies ports.Transactor. The store has no transaction
// semantics; mutations before a failure are visible, which is fine because
// the use cases run every precondition before the first write.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type userRepo Store

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domerrors.ErrUserExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Delete(_ context.Context, id domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type projectRepo Store

func (r *projectRepo) Create(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *project
	r.projects[project.ID] = &cp
	return nil
}

func (r *projectRepo) GetByID(_ context.Context, id domain.ProjectID) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.projects[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *projectRepo) ListByOwner(_ context.Context, owner domain.UserID) ([]*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Project{}
	for _, p := range r.projects {
		if p.OwnerID == owner {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *projectRepo) Update(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *project
	r.projects[project.ID] = &cp
	return nil
}

func (r *projectRepo) Delete(_ context.Context, id domain.ProjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tasks {
		if t.ProjectID != nil && *t.ProjectID == id {
			t.ProjectID = nil
		}
	}
	delete(r.projects, id)
	return nil
}

func (r *projectRepo) DeleteByOwner(_ context.Context, owner domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.projects {
		if p.OwnerID == owner {
			delete(r.projects, id)
		}
	}
	return nil
}

type taskRepo Store

// cloneTask copies the task including the tags backing array, so callers
// and the store never alias each other's state.
func cloneTask(t *domain.Task) *domain.Task {
	cp := *t
	if t.Tags != nil {
		cp.Tags = make([]string, len(t.Tags))
		copy(cp.Tags, t.Tags)
	}
	return &cp
}

func (r *taskRepo) Create(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *taskRepo) GetByID(_ context.Context, id domain.TaskID) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[id]; ok {
		return cloneTask(t), nil
	}
	return nil, nil
}

func (r *taskRepo) ListByOwner(_ context.Context, owner domain.UserID) ([]*domain.Task, error) {
	return r.listWhere(func(t *domain.Task) bool { return t.OwnerID == owner })
}

func (r *taskRepo) ListByProject(_ context.Context, owner domain.UserID, project domain.ProjectID) ([]*domain.Task, error) {
	return r.listWhere(func(t *domain.Task) bool {
		return t.OwnerID == owner && t.ProjectID != nil && *t.ProjectID == project
	})
}

func (r *taskRepo) listWhere(keep func(*domain.Task) bool) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Task{}
	for _, t := range r.tasks {
		if keep(t) {
			out = append(out, cloneTask(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *taskRepo) Update(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *taskRepo) Delete(_ context.Context, id domain.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}

func (r *taskRepo) DeleteByOwner(_ context.Context, owner domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tasks {
		if t.OwnerID == owner {
			delete(r.tasks, id)
		}
	}
	return nil
}

var _ ports.Transactor = (*Store)(nil)
