package task

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
	"github.com/Sloan357/task-management-api/internal/infrastructure/persistence/memory"
)

func seedProject(t *testing.T, store *memory.Store, owner domain.UserID) *domain.Project {
	t.Helper()
	p := &domain.Project{
		ID:        domain.NewProjectID(uuid.New()),
		OwnerID:   owner,
		Name:      "inbox",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := store.Projects().Create(context.Background(), p); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return p
}

func TestCreateTaskDefaults(t *testing.T) {
	store := memory.NewStore()
	uc := NewCreateTask(store.Tasks(), store.Projects(), store)
	owner := domain.NewUserID(uuid.New())

	created, err := uc.Execute(context.Background(), owner, CreateTaskInput{Title: "write tests"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.StatusTodo || created.Priority != domain.PriorityMedium {
		t.Errorf("defaults: got %s/%s, want todo/medium", created.Status, created.Priority)
	}
	if created.OwnerID != owner {
		t.Error("task must belong to requester")
	}
	if created.Tags == nil {
		t.Error("tags should default to an empty list")
	}
}

func TestCreateTaskRejectsBadInput(t *testing.T) {
	store := memory.NewStore()
	uc := NewCreateTask(store.Tasks(), store.Projects(), store)
	owner := domain.NewUserID(uuid.New())

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}
	for _, input := range []CreateTaskInput{
		{Title: ""},
		{Title: string(long)},
		{Title: "ok", Status: "archived"},
		{Title: "ok", Priority: "urgent"},
	} {
		if _, err := uc.Execute(context.Background(), owner, input); !errors.Is(err, domerrors.ErrValidation) {
			t.Errorf("input %+v: got %v, want validation error", input, err)
		}
	}
}

func TestCreateTaskTitleLengthInCharacters(t *testing.T) {
	store := memory.NewStore()
	uc := NewCreateTask(store.Tasks(), store.Projects(), store)
	owner := domain.NewUserID(uuid.New())

	// 100 characters but 300 bytes; the bound is characters.
	wide := strings.Repeat("あ", 100)
	if _, err := uc.Execute(context.Background(), owner, CreateTaskInput{Title: wide}); err != nil {
		t.Errorf("100-char multibyte title: %v, want accepted", err)
	}

	tooLong := strings.Repeat("あ", 201)
	if _, err := uc.Execute(context.Background(), owner, CreateTaskInput{Title: tooLong}); !errors.Is(err, domerrors.ErrValidation) {
		t.Errorf("201-char multibyte title: got %v, want validation error", err)
	}
}

func TestCreateTaskForeignProjectIsAtomic(t *testing.T) {
	store := memory.NewStore()
	uc := NewCreateTask(store.Tasks(), store.Projects(), store)
	owner := domain.NewUserID(uuid.New())
	stranger := domain.NewUserID(uuid.New())
	foreign := seedProject(t, store, stranger)

	_, err := uc.Execute(context.Background(), owner, CreateTaskInput{
		Title:     "sneaky",
		ProjectID: &foreign.ID,
	})
	if !errors.Is(err, domerrors.ErrProjectNotFound) {
		t.Fatalf("got %v, want project not found", err)
	}

	// Nothing may have been written.
	tasks, err := store.Tasks().ListByOwner(context.Background(), owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d persisted tasks, want 0", len(tasks))
	}
}

func TestGetTaskOwnershipOpacity(t *testing.T) {
	store := memory.NewStore()
	create := NewCreateTask(store.Tasks(), store.Projects(), store)
	get := NewGetTask(store.Tasks())
	owner := domain.NewUserID(uuid.New())
	stranger := domain.NewUserID(uuid.New())

	created, err := create.Execute(context.Background(), owner, CreateTaskInput{Title: "mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, errForeign := get.Execute(context.Background(), stranger, created.ID)
	_, errMissing := get.Execute(context.Background(), stranger, domain.NewTaskID(uuid.New()))
	if !errors.Is(errForeign, domerrors.ErrTaskNotFound) || errForeign != errMissing {
		t.Errorf("foreign=%v missing=%v, want identical task-not-found", errForeign, errMissing)
	}
}

func TestUpdateTaskPartialFields(t *testing.T) {
	store := memory.NewStore()
	create := NewCreateTask(store.Tasks(), store.Projects(), store)
	update := NewUpdateTask(store.Tasks(), store.Projects(), store)
	owner := domain.NewUserID(uuid.New())
	desc := "details"

	created, err := create.Execute(context.Background(), owner, CreateTaskInput{
		Title:       "original",
		Description: &desc,
		Tags:        []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := update.Execute(context.Background(), owner, created.ID, UpdateTaskInput{
		Status: domain.Some(domain.StatusInProgress),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.StatusInProgress {
		t.Errorf("status not applied: %s", updated.Status)
	}
	if updated.Title != "original" || updated.Description == nil || *updated.Description != "details" {
		t.Error("unset fields must stay untouched")
	}
	if len(updated.Tags) != 2 {
		t.Error("tags must stay untouched")
	}
}

func TestUpdateTaskEmptyInputBumpsUpdatedAt(t *testing.T) {
	store := memory.NewStore()
	create := NewCreateTask(store.Tasks(), store.Projects(), store)
	update := NewUpdateTask(store.Tasks(), store.Projects(), store)
	owner := domain.NewUserID(uuid.New())

	created, err := create.Execute(context.Background(), owner, CreateTaskInput{Title: "stable"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	time.Sleep(2 * time.Millisecond)
	updated, err := update.Execute(context.Background(), owner, created.ID, UpdateTaskInput{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if updated.Title != created.Title || updated.Status != created.Status || updated.Priority != created.Priority {
		t.Error("empty update changed fields")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("empty update must still advance UpdatedAt")
	}
}

func TestUpdateTaskExplicitNullClears(t *testing.T) {
	store := memory.NewStore()
	create := NewCreateTask(store.Tasks(), store.Projects(), store)
	update := NewUpdateTask(store.Tasks(), store.Projects(), store)
	owner := domain.NewUserID(uuid.New())
	p := seedProject(t, store, owner)
	desc := "gone soon"
	due := time.Now().UTC().Add(time.Hour)

	created, err := create.Execute(context.Background(), owner, CreateTaskInput{
		Title:       "clearable",
		Description: &desc,
		DueDate:     &due,
		ProjectID:   &p.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := update.Execute(context.Background(), owner, created.ID, UpdateTaskInput{
		Description: domain.Null[string](),
		DueDate:     domain.Null[time.Time](),
		ProjectID:   domain.Null[domain.ProjectID](),
	})
	if err != nil {
		t.Fatalf("null update: %v", err)
	}
	if updated.Description != nil || updated.DueDate != nil || updated.ProjectID != nil {
		t.Error("explicit null must clear nullable fields")
	}

	// Title cannot be nulled.
	_, err = update.Execute(context.Background(), owner, created.ID, UpdateTaskInput{
		Title: domain.Null[string](),
	})
	if !errors.Is(err, domerrors.ErrValidation) {
		t.Errorf("null title: got %v, want validation error", err)
	}
}

func TestUpdateTaskForeignProjectLink(t *testing.T) {
	store := memory.NewStore()
	create := NewCreateTask(store.Tasks(), store.Projects(), store)
	update := NewUpdateTask(store.Tasks(), store.Projects(), store)
	owner := domain.NewUserID(uuid.New())
	stranger := domain.NewUserID(uuid.New())
	foreign := seedProject(t, store, stranger)

	created, err := create.Execute(context.Background(), owner, CreateTaskInput{Title: "steady"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = update.Execute(context.Background(), owner, created.ID, UpdateTaskInput{
		ProjectID: domain.Some(foreign.ID),
	})
	if !errors.Is(err, domerrors.ErrProjectNotFound) {
		t.Fatalf("got %v, want project not found", err)
	}

	after, err := store.Tasks().GetByID(context.Background(), created.ID)
	if err != nil || after == nil {
		t.Fatalf("refetch: %v", err)
	}
	if after.ProjectID != nil {
		t.Error("failed linkage must not be applied")
	}
}

func TestCompleteTaskIdempotent(t *testing.T) {
	store := memory.NewStore()
	create := NewCreateTask(store.Tasks(), store.Projects(), store)
	complete := NewCompleteTask(store.Tasks(), store)
	owner := domain.NewUserID(uuid.New())

	created, err := create.Execute(context.Background(), owner, CreateTaskInput{Title: "finish me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := complete.Execute(context.Background(), owner, created.ID)
	if err != nil || first.Status != domain.StatusDone {
		t.Fatalf("first complete: %v (%s)", err, first.Status)
	}
	time.Sleep(2 * time.Millisecond)
	second, err := complete.Execute(context.Background(), owner, created.ID)
	if err != nil || second.Status != domain.StatusDone {
		t.Fatalf("second complete: %v", err)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Error("completing a done task must still advance UpdatedAt")
	}
}

func TestDeleteTaskScopedToOwner(t *testing.T) {
	store := memory.NewStore()
	create := NewCreateTask(store.Tasks(), store.Projects(), store)
	del := NewDeleteTask(store.Tasks(), store)
	owner := domain.NewUserID(uuid.New())
	stranger := domain.NewUserID(uuid.New())

	created, err := create.Execute(context.Background(), owner, CreateTaskInput{Title: "keep"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := del.Execute(context.Background(), stranger, created.ID); !errors.Is(err, domerrors.ErrTaskNotFound) {
		t.Errorf("stranger delete: got %v, want task not found", err)
	}
	if err := del.Execute(context.Background(), owner, created.ID); err != nil {
		t.Errorf("owner delete: %v", err)
	}
	if got, _ := store.Tasks().GetByID(context.Background(), created.ID); got != nil {
		t.Error("task should be gone")
	}
}

func TestListTasksScopedToRequester(t *testing.T) {
	store := memory.NewStore()
	create := NewCreateTask(store.Tasks(), store.Projects(), store)
	list := NewListTasks(store.Tasks())
	u1 := domain.NewUserID(uuid.New())
	u2 := domain.NewUserID(uuid.New())
	p := seedProject(t, store, u1)

	if _, err := create.Execute(context.Background(), u1, CreateTaskInput{
		Title:     "T",
		Priority:  domain.PriorityHigh,
		ProjectID: &p.ID,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	high := domain.PriorityHigh
	mine, err := list.Execute(context.Background(), u1, Criteria{Priority: &high})
	if err != nil || len(mine) != 1 || mine[0].Title != "T" {
		t.Errorf("owner list: got %v (%v), want [T]", titles(mine), err)
	}
	theirs, err := list.Execute(context.Background(), u2, Criteria{})
	if err != nil || len(theirs) != 0 {
		t.Errorf("stranger list: got %d tasks, want 0", len(theirs))
	}
}
