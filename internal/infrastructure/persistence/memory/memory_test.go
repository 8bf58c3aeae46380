package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Sloan357/task-management-api/internal/domain"
)

func TestTaskTagsDoNotAlias(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	in := &domain.Task{
		ID:        domain.NewTaskID(uuid.New()),
		OwnerID:   domain.NewUserID(uuid.New()),
		Title:     "tagged",
		Status:    domain.StatusTodo,
		Priority:  domain.PriorityMedium,
		Tags:      []string{"work", "urgent"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.Tasks().Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating the caller's slice after Create must not reach the store.
	in.Tags[0] = "mutated"
	got, err := store.Tasks().GetByID(ctx, in.ID)
	if err != nil || got == nil {
		t.Fatalf("get: %v", err)
	}
	if got.Tags[0] != "work" {
		t.Errorf("stored tags changed through caller's slice: %v", got.Tags)
	}

	// Mutating a returned task's tags must not reach the store either.
	got.Tags[1] = "mutated"
	again, err := store.Tasks().GetByID(ctx, in.ID)
	if err != nil || again == nil {
		t.Fatalf("refetch: %v", err)
	}
	if again.Tags[1] != "urgent" {
		t.Errorf("stored tags changed through returned slice: %v", again.Tags)
	}
}

func TestEmptyTagsStayNonNil(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	in := &domain.Task{
		ID:        domain.NewTaskID(uuid.New()),
		OwnerID:   domain.NewUserID(uuid.New()),
		Title:     "untagged",
		Status:    domain.StatusTodo,
		Priority:  domain.PriorityMedium,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.Tasks().Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := store.Tasks().GetByID(ctx, in.ID)
	if err != nil || got == nil {
		t.Fatalf("get: %v", err)
	}
	if got.Tags == nil {
		t.Error("empty tag list must round-trip as an empty list, not nil")
	}
}
