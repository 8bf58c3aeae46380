package project

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Sloan357/task-management-api/internal/application/ports"
	"github.com/Sloan357/task-management-api/internal/domain"
	domerrors "github.com/Sloan357/task-management-api/internal/domain/errors"
)

const maxNameLength = 200

type CreateProjectInput struct {
	Name        string
	Description *string
	Color       *string
}

type CreateProject struct {
	projects ports.ProjectRepository
}

func NewCreateProject(projects ports.ProjectRepository) *CreateProject {
	return &CreateProject{projects: projects}
}

func (uc *CreateProject) Execute(ctx context.Context, requester domain.UserID, input CreateProjectInput) (*domain.Project, error) {
	if !validName(input.Name) || !validColor(input.Color) {
		return nil, domerrors.ErrValidation
	}
	now := time.Now().UTC()
	p := &domain.Project{
		ID:          domain.NewProjectID(uuid.New()),
		OwnerID:     requester,
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// validName bounds the name to 1..200 characters, counted in runes so
// multibyte names are not cut short.
func validName(name string) bool {
	return name != "" && utf8.RuneCountInString(name) <= maxNameLength
}

func validColor(color *string) bool {
	return color == nil || domain.ValidColor(*color)
}
