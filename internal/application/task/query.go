package task

import (
	"sort"
	"strings"
	"time"

	"github.com/Sloan357/task-management-api/internal/domain"
)

// SortField selects the task ordering key.
type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByDueDate   SortField = "due_date"
	SortByPriority  SortField = "priority"
)

// Valid reports whether f is a known sort field.
func (f SortField) Valid() bool {
	switch f {
	case SortByCreatedAt, SortByDueDate, SortByPriority:
		return true
	}
	return false
}

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool { return o == SortAsc || o == SortDesc }

// Criteria is the optional filter/search/sort set for listing tasks. Every
// filter is independently optional; supplied filters combine with AND, and
// the order they are applied in never changes the result set.
type Criteria struct {
	Status    *domain.TaskStatus
	Priority  *domain.TaskPriority
	ProjectID *domain.ProjectID

	// Tags is comma-separated; a task matches when its tag list shares at
	// least one element with the set (overlap, not subset).
	Tags string

	// Overdue restricts to tasks due strictly before now and not done.
	// False means unset: it adds no constraint.
	Overdue bool

	// Search is a case-insensitive substring match against title or
	// description.
	Search string

	SortBy    SortField
	SortOrder SortOrder
}

// tagSet splits the comma-separated tag filter, trimming surrounding
// whitespace from each entry. Empty entries are dropped.
func (c Criteria) tagSet() map[string]struct{} {
	if c.Tags == "" {
		return nil
	}
	set := make(map[string]struct{})
	for _, t := range strings.Split(c.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

func (c Criteria) matches(t *domain.Task, tags map[string]struct{}, now time.Time) bool {
	if c.Status != nil && t.Status != *c.Status {
		return false
	}
	if c.Priority != nil && t.Priority != *c.Priority {
		return false
	}
	if c.ProjectID != nil && (t.ProjectID == nil || *t.ProjectID != *c.ProjectID) {
		return false
	}
	if tags != nil && !overlaps(t.Tags, tags) {
		return false
	}
	if c.Overdue && !t.Overdue(now) {
		return false
	}
	if c.Search != "" && !matchesSearch(t, c.Search) {
		return false
	}
	return true
}

func overlaps(tags []string, set map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

func matchesSearch(t *domain.Task, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	return t.Description != nil && strings.Contains(strings.ToLower(*t.Description), needle)
}

// Apply filters tasks against c, evaluating the overdue predicate at now,
// and sorts the survivors. The input slice is not modified.
func Apply(tasks []*domain.Task, c Criteria, now time.Time) []*domain.Task {
	tags := c.tagSet()
	out := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.matches(t, tags, now) {
			out = append(out, t)
		}
	}
	sortTasks(out, c.SortBy, c.SortOrder)
	return out
}

// sortTasks orders tasks in place. Priority sorts by severity rank rather
// than the alphabetic order of the enum values. Tasks without a due date
// sort last regardless of direction; the stable sort keeps ties in their
// prior relative order.
func sortTasks(tasks []*domain.Task, by SortField, order SortOrder) {
	desc := order == SortDesc
	switch by {
	case SortByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			if desc {
				return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
			}
			return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
		})
	case SortByDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			if a == nil || b == nil {
				return b == nil && a != nil
			}
			if desc {
				return a.After(*b)
			}
			return a.Before(*b)
		})
	default: // created_at
		sort.SliceStable(tasks, func(i, j int) bool {
			if desc {
				return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
			}
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	}
}
