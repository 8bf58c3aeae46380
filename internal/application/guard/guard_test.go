package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Sloan357/task-management-api/internal/domain"
)

var errNotFound = errors.New("not found")

func TestResolveOwned(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	id := domain.NewTaskID(uuid.New())
	stored := &domain.Task{ID: id, OwnerID: owner}

	lookup := func(_ context.Context, got domain.TaskID) (*domain.Task, error) {
		if got == id {
			return stored, nil
		}
		return nil, nil
	}

	res, err := Resolve(context.Background(), lookup, id, owner, errNotFound)
	if err != nil {
		t.Fatalf("owner resolve: %v", err)
	}
	if res != stored {
		t.Error("owner should receive the resource")
	}
}

func TestResolveCollapsesMissingAndForeign(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	stranger := domain.NewUserID(uuid.New())
	id := domain.NewTaskID(uuid.New())
	stored := &domain.Task{ID: id, OwnerID: owner}

	lookup := func(_ context.Context, got domain.TaskID) (*domain.Task, error) {
		if got == id {
			return stored, nil
		}
		return nil, nil
	}

	// A foreign owner and a missing id must be indistinguishable.
	_, errForeign := Resolve(context.Background(), lookup, id, stranger, errNotFound)
	_, errMissing := Resolve(context.Background(), lookup, domain.NewTaskID(uuid.New()), stranger, errNotFound)

	if !errors.Is(errForeign, errNotFound) {
		t.Errorf("foreign owner: got %v, want %v", errForeign, errNotFound)
	}
	if !errors.Is(errMissing, errNotFound) {
		t.Errorf("missing id: got %v, want %v", errMissing, errNotFound)
	}
	if errForeign != errMissing {
		t.Error("foreign and missing must yield the identical error")
	}
}

func TestResolvePropagatesLookupError(t *testing.T) {
	boom := errors.New("connection lost")
	lookup := func(context.Context, domain.TaskID) (*domain.Task, error) {
		return nil, boom
	}
	_, err := Resolve(context.Background(), lookup, domain.NewTaskID(uuid.New()), domain.NewUserID(uuid.New()), errNotFound)
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want lookup error", err)
	}
}
