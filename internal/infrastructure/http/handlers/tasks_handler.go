package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Sloan357/task-management-api/internal/application/task"
	"github.com/Sloan357/task-management-api/internal/domain"
	"github.com/Sloan357/task-management-api/internal/infrastructure/http/middleware"
)

// TasksHandler handles /api/tasks/*. Requires bearer auth.
type TasksHandler struct {
	create   *task.CreateTask
	list     *task.ListTasks
	get      *task.GetTask
	update   *task.UpdateTask
	complete *task.CompleteTask
	delete   *task.DeleteTask
	validate *validator.Validate
	log      zerolog.Logger
}

func NewTasksHandler(create *task.CreateTask, list *task.ListTasks, get *task.GetTask, update *task.UpdateTask, complete *task.CompleteTask, del *task.DeleteTask, log zerolog.Logger) *TasksHandler {
	return &TasksHandler{
		create:   create,
		list:     list,
		get:      get,
		update:   update,
		complete: complete,
		delete:   del,
		validate: validator.New(),
		log:      log,
	}
}

type taskResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	ProjectID   *string  `json:"project_id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	DueDate     *string  `json:"due_date"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func taskToResponse(t *domain.Task) taskResponse {
	resp := taskResponse{
		ID:          t.ID.String(),
		UserID:      t.OwnerID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Tags:        t.Tags,
		CreatedAt:   t.CreatedAt.Format(timeFormat),
		UpdatedAt:   t.UpdatedAt.Format(timeFormat),
	}
	if t.ProjectID != nil {
		s := t.ProjectID.String()
		resp.ProjectID = &s
	}
	if t.DueDate != nil {
		s := t.DueDate.Format(timeFormat)
		resp.DueDate = &s
	}
	return resp
}

// Create handles POST /api/tasks.
func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	var body struct {
		Title       string     `json:"title" validate:"required,min=1,max=200"`
		Description *string    `json:"description"`
		Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
		Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
		DueDate     *time.Time `json:"due_date"`
		Tags        []string   `json:"tags"`
		ProjectID   *uuid.UUID `json:"project_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid task fields")
		return
	}
	input := task.CreateTaskInput{
		Title:       body.Title,
		Description: body.Description,
		Status:      domain.TaskStatus(body.Status),
		Priority:    domain.TaskPriority(body.Priority),
		DueDate:     body.DueDate,
		Tags:        body.Tags,
	}
	if body.ProjectID != nil {
		pid := domain.NewProjectID(*body.ProjectID)
		input.ProjectID = &pid
	}
	created, err := h.create.Execute(r.Context(), requester, input)
	middleware.RecordTaskMutation("create", err == nil)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, taskToResponse(created))
}

// List handles GET /api/tasks with optional filter/search/sort params.
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	criteria, err := parseCriteria(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	tasks, err := h.list.Execute(r.Context(), requester, criteria)
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

// Get handles GET /api/tasks/{id}.
func (h *TasksHandler) Get(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	id, ok := taskIDFromURL(w, r)
	if !ok {
		return
	}
	t, err := h.get.Execute(r.Context(), requester, id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskToResponse(t))
}

// Update handles PUT /api/tasks/{id} with partial-update semantics: only
// fields present in the body are applied.
func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	id, ok := taskIDFromURL(w, r)
	if !ok {
		return
	}
	var body struct {
		Title       domain.Optional[string]              `json:"title"`
		Description domain.Optional[string]              `json:"description"`
		Status      domain.Optional[domain.TaskStatus]   `json:"status"`
		Priority    domain.Optional[domain.TaskPriority] `json:"priority"`
		DueDate     domain.Optional[time.Time]           `json:"due_date"`
		Tags        domain.Optional[[]string]            `json:"tags"`
		ProjectID   domain.Optional[domain.ProjectID]    `json:"project_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid request body")
		return
	}
	updated, err := h.update.Execute(r.Context(), requester, id, task.UpdateTaskInput{
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		Priority:    body.Priority,
		DueDate:     body.DueDate,
		Tags:        body.Tags,
		ProjectID:   body.ProjectID,
	})
	middleware.RecordTaskMutation("update", err == nil)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskToResponse(updated))
}

// Complete handles PATCH /api/tasks/{id}/complete.
func (h *TasksHandler) Complete(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	id, ok := taskIDFromURL(w, r)
	if !ok {
		return
	}
	t, err := h.complete.Execute(r.Context(), requester, id)
	middleware.RecordTaskMutation("complete", err == nil)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskToResponse(t))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	id, ok := taskIDFromURL(w, r)
	if !ok {
		return
	}
	err := h.delete.Execute(r.Context(), requester, id)
	middleware.RecordTaskMutation("delete", err == nil)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func taskIDFromURL(w http.ResponseWriter, r *http.Request) (domain.TaskID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid task id")
		return domain.TaskID{}, false
	}
	return domain.NewTaskID(id), true
}
