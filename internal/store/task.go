package store

import (
	"context"

	"github.com/phrazzld/taskboard/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Implementations hand out copies: mutating a returned task never changes
// stored state until it is passed back through Update.
type TaskStore interface {
	// Create saves a new task. Returns ErrTaskExists if the ID is taken
	// and a wrapped ErrInvalidEntity if the task fails validation.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// Update replaces the stored task that has the same ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task permanently.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error

	// List returns every task in insertion order.
	List(ctx context.Context) ([]*domain.Task, error)
}
