package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the board column a task belongs to.
type Category string

// The four fixed categories. Values match the labels the client renders.
const (
	CategoryTodo       Category = "To Do"
	CategoryInProgress Category = "In Progress"
	CategoryDone       Category = "Done"
	CategoryTimeout    Category = "Timeout"
)

// MaxDurationSeconds caps a task's time budget at one year.
const MaxDurationSeconds = 365 * 24 * 60 * 60

// Categories returns every known category in board order.
func Categories() []Category {
	return []Category{CategoryTodo, CategoryInProgress, CategoryDone, CategoryTimeout}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryTodo, CategoryInProgress, CategoryDone, CategoryTimeout:
		return true
	}
	return false
}

// ParseCategory converts raw input into a Category.
// An empty string yields CategoryTodo; anything unknown is a ValidationError.
func ParseCategory(raw string) (Category, error) {
	if raw == "" {
		return CategoryTodo, nil
	}
	c := Category(raw)
	if !c.IsValid() {
		return "", NewValidationError("category", "must be one of To Do, In Progress, Done, Timeout", ErrInvalidCategory)
	}
	return c, nil
}

// Task is a unit of work on the board.
//
// TimeoutAt is non-nil only while the task is in progress and a deadline was
// computed on entering that category.
type Task struct {
	ID          string
	Title       string
	Description string
	Category    Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// Duration is the time budget in seconds.
	Duration  int
	TimeoutAt *time.Time
}

// NewTask creates a task stamped at now. Entering IN_PROGRESS at creation
// computes the deadline the same way an update would.
func NewTask(title, description string, duration int, category Category, now time.Time) (*Task, error) {
	now = now.UTC()
	task := &Task{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Category:    CategoryTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
		Duration:    duration,
	}

	if category == "" {
		category = CategoryTodo
	}
	task.ApplyCategory(&category, now)

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == "" {
		return NewValidationError("id", "is required", ErrInvalidID)
	}
	if t.Title == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}
	if t.Description == "" {
		return NewValidationError("description", "is required", ErrEmptyDescription)
	}
	if t.Duration <= 0 {
		return NewValidationError("duration", "must be a positive number of seconds", ErrInvalidDuration)
	}
	if t.Duration > MaxDurationSeconds {
		return NewValidationError("duration", "must not exceed one year", ErrInvalidDuration)
	}
	if !t.Category.IsValid() {
		return NewValidationError("category", "is not a known category", ErrInvalidCategory)
	}
	return nil
}

// Touch records a mutation at now. UpdatedAt never moves backwards.
func (t *Task) Touch(now time.Time) {
	now = now.UTC()
	if now.After(t.UpdatedAt) {
		t.UpdatedAt = now
	}
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.TimeoutAt != nil {
		ts := *t.TimeoutAt
		c.TimeoutAt = &ts
	}
	return &c
}
