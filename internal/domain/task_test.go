package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	task, err := NewTask("  Write docs ", "Describe the API", 60, "", now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == "" {
		t.Error("Expected generated ID, got empty string")
	}
	if task.Title != "Write docs" {
		t.Errorf("Expected trimmed title, got %q", task.Title)
	}
	if task.Category != CategoryTodo {
		t.Errorf("Expected default category %q, got %q", CategoryTodo, task.Category)
	}
	if !task.CreatedAt.Equal(now) || !task.UpdatedAt.Equal(now) {
		t.Errorf("Expected timestamps %v, got created=%v updated=%v", now, task.CreatedAt, task.UpdatedAt)
	}
	if task.TimeoutAt != nil {
		t.Errorf("Expected no deadline for TODO task, got %v", task.TimeoutAt)
	}
}

func TestNewTaskInProgressComputesDeadline(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	task, err := NewTask("A", "B", 10, CategoryInProgress, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.TimeoutAt == nil {
		t.Fatal("Expected deadline to be set")
	}
	if want := task.CreatedAt.Add(10 * time.Second); !task.TimeoutAt.Equal(want) {
		t.Errorf("Expected deadline %v, got %v", want, *task.TimeoutAt)
	}
}

func TestNewTaskOtherCategoriesHaveNoDeadline(t *testing.T) {
	t.Parallel()

	for _, c := range []Category{CategoryTodo, CategoryDone, CategoryTimeout} {
		task, err := NewTask("A", "B", 10, c, time.Now())
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", c, err)
		}
		if task.TimeoutAt != nil {
			t.Errorf("%s: expected no deadline, got %v", c, *task.TimeoutAt)
		}
	}
}

func TestNewTaskValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		title       string
		description string
		duration    int
		category    Category
		wantErr     error
	}{
		{"empty title", " ", "B", 10, CategoryTodo, ErrEmptyTitle},
		{"empty description", "A", "", 10, CategoryTodo, ErrEmptyDescription},
		{"zero duration", "A", "B", 0, CategoryTodo, ErrInvalidDuration},
		{"negative duration", "A", "B", -5, CategoryTodo, ErrInvalidDuration},
		{"duration over a year", "A", "B", MaxDurationSeconds + 1, CategoryInProgress, ErrInvalidDuration},
		{"duration that would overflow the deadline", "A", "B", 10_000_000_000, CategoryInProgress, ErrInvalidDuration},
		{"unknown category", "A", "B", 10, Category("Blocked"), ErrInvalidCategory},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTask(tc.title, tc.description, tc.duration, tc.category, time.Now())
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected error to match ErrValidation, got %v", err)
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("Expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %q, %v", c, got, err)
		}
	}

	got, err := ParseCategory("")
	if err != nil || got != CategoryTodo {
		t.Errorf("ParseCategory(\"\") = %q, %v; want default %q", got, err, CategoryTodo)
	}

	if _, err := ParseCategory("in progress"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Expected ErrInvalidCategory for wrong casing, got %v", err)
	}
}

func TestTouchIsMonotonic(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	task := &Task{UpdatedAt: now}

	task.Touch(now.Add(-time.Minute))
	if !task.UpdatedAt.Equal(now) {
		t.Errorf("Expected UpdatedAt to stay %v, got %v", now, task.UpdatedAt)
	}

	later := now.Add(time.Minute)
	task.Touch(later)
	if !task.UpdatedAt.Equal(later) {
		t.Errorf("Expected UpdatedAt %v, got %v", later, task.UpdatedAt)
	}
}

func TestCloneCopiesDeadline(t *testing.T) {
	t.Parallel()

	task, err := NewTask("A", "B", 10, CategoryInProgress, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	clone := task.Clone()
	*clone.TimeoutAt = clone.TimeoutAt.Add(time.Hour)

	if task.TimeoutAt.Equal(*clone.TimeoutAt) {
		t.Error("Expected clone deadline to be independent of original")
	}
}

func TestNewTaskAcceptsMaxDuration(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	task, err := NewTask("A", "B", MaxDurationSeconds, CategoryInProgress, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := now.Add(time.Duration(MaxDurationSeconds) * time.Second)
	if task.TimeoutAt == nil || !task.TimeoutAt.Equal(want) {
		t.Errorf("Expected deadline %v, got %v", want, task.TimeoutAt)
	}
	if task.IsExpired(now.Add(time.Second)) {
		t.Error("Expected task not to be expired one second after creation")
	}
}
