package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskID is a value object for task identity.
type TaskID struct{ uuid.UUID }

// NewTaskID creates a new TaskID from uuid.
func NewTaskID(id uuid.UUID) TaskID { return TaskID{UUID: id} }

// String returns the canonical string form.
func (t TaskID) String() string { return t.UUID.String() }

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// Valid reports whether s is a known status value.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// TaskPriority is the severity of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is a known priority value.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank maps priority to its severity order: high 3, medium 2, low 1.
// The natural alphabetic order of the values does not match severity, so
// priority sorting always goes through this rank.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Task is the central entity. OwnerID is immutable after creation;
// ProjectID, when set, must reference a project owned by the same user.
// Tags preserve duplicates and supplied order.
type Task struct {
	ID          TaskID
	OwnerID     UserID
	ProjectID   *ProjectID
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ResourceOwner returns the owning user for owner-scoped access checks.
func (t *Task) ResourceOwner() UserID { return t.OwnerID }

// Overdue reports whether the task has a due date strictly before now and
// is not done.
func (t *Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusDone
}
