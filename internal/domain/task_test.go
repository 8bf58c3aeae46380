package domain

import (
	"testing"
	"time"
)

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() != 3 || PriorityMedium.Rank() != 2 || PriorityLow.Rank() != 1 {
		t.Errorf("rank order wrong: high=%d medium=%d low=%d",
			PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
	if TaskPriority("urgent").Rank() != 0 {
		t.Error("unknown priority should rank 0")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []TaskStatus{StatusTodo, StatusInProgress, StatusDone} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if TaskStatus("archived").Valid() {
		t.Error("archived should not be a valid status")
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		due  *time.Time
		st   TaskStatus
		want bool
	}{
		{"past due in progress", &past, StatusInProgress, true},
		{"past due todo", &past, StatusTodo, true},
		{"past due but done", &past, StatusDone, false},
		{"future due", &future, StatusTodo, false},
		{"no due date", nil, StatusTodo, false},
		{"due exactly now", &now, StatusTodo, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task := Task{DueDate: tc.due, Status: tc.st}
			if got := task.Overdue(now); got != tc.want {
				t.Errorf("Overdue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidColor(t *testing.T) {
	for _, ok := range []string{"#FF0000", "#a1b2c3", "#000000"} {
		if !ValidColor(ok) {
			t.Errorf("%q should be a valid color", ok)
		}
	}
	for _, bad := range []string{"FF0000", "#FF00", "#GG0000", "#FF00000", "red"} {
		if ValidColor(bad) {
			t.Errorf("%q should not be a valid color", bad)
		}
	}
}
