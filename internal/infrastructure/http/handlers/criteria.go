package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Sloan357/task-management-api/internal/application/task"
	"github.com/Sloan357/task-management-api/internal/domain"
)

// parseCriteria decodes the task list query parameters. Unknown enum and
// sort values are rejected rather than silently ignored.
func parseCriteria(r *http.Request) (task.Criteria, error) {
	q := r.URL.Query()
	var c task.Criteria

	if v := q.Get("status"); v != "" {
		s := domain.TaskStatus(v)
		if !s.Valid() {
			return c, fmt.Errorf("invalid status %q", v)
		}
		c.Status = &s
	}
	if v := q.Get("priority"); v != "" {
		p := domain.TaskPriority(v)
		if !p.Valid() {
			return c, fmt.Errorf("invalid priority %q", v)
		}
		c.Priority = &p
	}
	if v := q.Get("project_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return c, fmt.Errorf("invalid project_id %q", v)
		}
		pid := domain.NewProjectID(id)
		c.ProjectID = &pid
	}
	c.Tags = q.Get("tags")
	if v := q.Get("overdue"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("invalid overdue %q", v)
		}
		c.Overdue = b
	}
	c.Search = q.Get("search")

	c.SortBy = task.SortByCreatedAt
	if v := q.Get("sort_by"); v != "" {
		f := task.SortField(v)
		if !f.Valid() {
			return c, fmt.Errorf("invalid sort_by %q", v)
		}
		c.SortBy = f
	}
	c.SortOrder = task.SortDesc
	if v := q.Get("sort_order"); v != "" {
		o := task.SortOrder(v)
		if !o.Valid() {
			return c, fmt.Errorf("invalid sort_order %q", v)
		}
		c.SortOrder = o
	}
	return c, nil
}
