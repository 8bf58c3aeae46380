package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Sloan357/task-management-api/internal/application/project"
	"github.com/Sloan357/task-management-api/internal/domain"
	"github.com/Sloan357/task-management-api/internal/infrastructure/http/middleware"
)

// ProjectsHandler handles /api/projects/*. Requires bearer auth.
type ProjectsHandler struct {
	create   *project.CreateProject
	list     *project.ListProjects
	get      *project.GetProject
	tasks    *project.ProjectTasks
	update   *project.UpdateProject
	delete   *project.DeleteProject
	validate *validator.Validate
	log      zerolog.Logger
}

func NewProjectsHandler(create *project.CreateProject, list *project.ListProjects, get *project.GetProject, tasks *project.ProjectTasks, update *project.UpdateProject, del *project.DeleteProject, log zerolog.Logger) *ProjectsHandler {
	return &ProjectsHandler{
		create:   create,
		list:     list,
		get:      get,
		tasks:    tasks,
		update:   update,
		delete:   del,
		validate: validator.New(),
		log:      log,
	}
}

type projectResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func projectToResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID.String(),
		UserID:      p.OwnerID.String(),
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		CreatedAt:   p.CreatedAt.Format(timeFormat),
		UpdatedAt:   p.UpdatedAt.Format(timeFormat),
	}
}

// Create handles POST /api/projects.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	var body struct {
		Name        string  `json:"name" validate:"required,min=1,max=200"`
		Description *string `json:"description"`
		Color       *string `json:"color" validate:"omitempty,hexcolor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid project fields")
		return
	}
	created, err := h.create.Execute(r.Context(), requester, project.CreateProjectInput{
		Name:        body.Name,
		Description: body.Description,
		Color:       body.Color,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, projectToResponse(created))
}

// List handles GET /api/projects.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	projects, err := h.list.Execute(r.Context(), requester)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, projectToResponse(p))
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/projects/{id}.
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	id, ok := projectIDFromURL(w, r)
	if !ok {
		return
	}
	p, err := h.get.Execute(r.Context(), requester, id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectToResponse(p))
}

// Tasks handles GET /api/projects/{id}/tasks.
func (h *ProjectsHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	id, ok := projectIDFromURL(w, r)
	if !ok {
		return
	}
	tasks, err := h.tasks.Execute(r.Context(), requester, id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskToResponse(t))
	}
	writeJSON(w, http.StatusOK, items)
}

// Update handles PUT /api/projects/{id} with partial-update semantics.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	id, ok := projectIDFromURL(w, r)
	if !ok {
		return
	}
	var body struct {
		Name        domain.Optional[string] `json:"name"`
		Description domain.Optional[string] `json:"description"`
		Color       domain.Optional[string] `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid request body")
		return
	}
	updated, err := h.update.Execute(r.Context(), requester, id, project.UpdateProjectInput{
		Name:        body.Name,
		Description: body.Description,
		Color:       body.Color,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectToResponse(updated))
}

// Delete handles DELETE /api/projects/{id}. The project's tasks survive
// with their project link cleared.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	id, ok := projectIDFromURL(w, r)
	if !ok {
		return
	}
	if err := h.delete.Execute(r.Context(), requester, id); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func projectIDFromURL(w http.ResponseWriter, r *http.Request) (domain.ProjectID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid project id")
		return domain.ProjectID{}, false
	}
	return domain.NewProjectID(id), true
}
