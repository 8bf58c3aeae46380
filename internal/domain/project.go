package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ProjectID is a value object for project identity.
type ProjectID struct{ uuid.UUID }

// NewProjectID creates a new ProjectID from uuid.
func NewProjectID(id uuid.UUID) ProjectID { return ProjectID{UUID: id} }

// String returns the canonical string form.
func (p ProjectID) String() string { return p.UUID.String() }

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidColor reports whether s is a #RRGGBB hex color code.
func ValidColor(s string) bool { return colorPattern.MatchString(s) }

// Project is a named grouping of tasks owned by a single user. Deleting a
// project detaches its tasks (project id set to nil); the tasks survive.
type Project struct {
	ID          ProjectID
	OwnerID     UserID
	Name        string
	Description *string
	Color       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ResourceOwner returns the owning user for owner-scoped access checks.
func (p *Project) ResourceOwner() UserID { return p.OwnerID }
