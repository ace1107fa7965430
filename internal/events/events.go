package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names what happened to a task.
type EventType string

// Task lifecycle event types.
const (
	TaskCreated  EventType = "task.created"
	TaskUpdated  EventType = "task.updated"
	TaskDeleted  EventType = "task.deleted"
	TaskTimedOut EventType = "task.timed_out"
)

// TaskEvent records a change to a single task.
type TaskEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type indicates what happened
	Type EventType `json:"type"`

	// TaskID identifies the affected task
	TaskID string `json:"task_id"`

	// Category is the task's category after the change; empty for deletions
	Category string `json:"category,omitempty"`

	// OccurredAt is when the change was applied
	OccurredAt time.Time `json:"occurred_at"`
}

// NewTaskEvent creates a new TaskEvent with a fresh ID.
func NewTaskEvent(eventType EventType, taskID, category string, occurredAt time.Time) *TaskEvent {
	return &TaskEvent{
		ID:         uuid.New(),
		Type:       eventType,
		TaskID:     taskID,
		Category:   category,
		OccurredAt: occurredAt,
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *TaskEvent) error
}

// EventHandlerFunc adapts an ordinary function to EventHandler.
type EventHandlerFunc func(ctx context.Context, event *TaskEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *TaskEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *TaskEvent) error
}
