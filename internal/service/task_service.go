package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/events"
	"github.com/phrazzld/taskboard/internal/store"
)

// CreateTaskParams carries the fields accepted when creating a task.
type CreateTaskParams struct {
	Title       string
	Description string
	// Category is optional; empty means To Do.
	Category string
	// Duration is the time budget in seconds.
	Duration int
}

// UpdateTaskParams carries a partial update. Nil fields are left unchanged.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Category    *string
	Duration    *int
}

// TaskService provides task board operations
type TaskService interface {
	// CreateTask validates the input and stores a new task
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// GetTask retrieves a task by its ID
	GetTask(ctx context.Context, id string) (*domain.Task, error)

	// UpdateTask merges a partial update into an existing task and applies
	// the category lifecycle rules
	UpdateTask(ctx context.Context, id string, params UpdateTaskParams) (*domain.Task, error)

	// DeleteTask removes a task permanently
	DeleteTask(ctx context.Context, id string) error

	// ListTasks returns every task in insertion order
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// SweepExpired moves every expired in-progress task to Timeout and
	// returns the tasks it changed
	SweepExpired(ctx context.Context) ([]*domain.Task, error)
}

// Clock returns the current time.
type Clock func() time.Time

// Option configures a task service.
type Option func(*taskServiceImpl)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clock Clock) Option {
	return func(s *taskServiceImpl) {
		if clock != nil {
			s.now = clock
		}
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	// mu serializes every mutation, including sweeps.
	mu           sync.Mutex
	store        store.TaskStore
	eventEmitter events.EventEmitter
	now          Clock
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
	opts ...Option,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		store:        taskStore,
		eventEmitter: eventEmitter,
		now:          time.Now,
		logger:       logger.With("component", "task_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	category, err := domain.ParseCategory(params.Category)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	now := s.now().UTC()
	task, err := domain.NewTask(params.Title, params.Description, params.Duration, category, now)
	if err != nil {
		s.mu.Unlock()
		s.logger.Debug("rejected task creation", "error", err)
		return nil, err
	}

	if err := s.store.Create(ctx, task); err != nil {
		s.mu.Unlock()
		s.logger.Error("failed to store task", "error", err, "task_id", task.ID)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}
	s.mu.Unlock()

	s.logger.Info("task created",
		"task_id", task.ID,
		"category", task.Category,
		"duration_seconds", task.Duration)
	s.emit(ctx, events.TaskCreated, task, now)

	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.logger.Debug("failed to retrieve task", "error", err, "task_id", id)
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id string,
	params UpdateTaskParams,
) (*domain.Task, error) {
	requested, err := requestedCategory(params.Category)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.mu.Unlock()
		return nil, NewTaskServiceError("update_task", "failed to retrieve task", err)
	}

	if err := mergeFields(task, params); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	now := s.now().UTC()
	previous := task.Category
	task.ApplyCategory(requested, now)
	task.Touch(now)

	if err := s.store.Update(ctx, task); err != nil {
		s.mu.Unlock()
		s.logger.Error("failed to update task", "error", err, "task_id", id)
		return nil, NewTaskServiceError("update_task", "failed to save task", err)
	}
	s.mu.Unlock()

	s.logger.Info("task updated",
		"task_id", task.ID,
		"previous_category", previous,
		"category", task.Category,
		"has_deadline", task.TimeoutAt != nil)
	s.emit(ctx, events.TaskUpdated, task, now)

	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	err := s.store.Delete(ctx, id)
	now := s.now().UTC()
	s.mu.Unlock()

	if err != nil {
		s.logger.Debug("failed to delete task", "error", err, "task_id", id)
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.logger.Info("task deleted", "task_id", id)
	s.emit(ctx, events.TaskDeleted, &domain.Task{ID: id}, now)
	return nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// SweepExpired implements TaskService.SweepExpired.
// Every task is judged against one snapshot of the clock taken before the
// scan. A task that fails to save is skipped and reported; the rest of the
// sweep still runs.
func (s *taskServiceImpl) SweepExpired(ctx context.Context) ([]*domain.Task, error) {
	s.mu.Lock()
	now := s.now().UTC()

	tasks, err := s.store.List(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, NewTaskServiceError("sweep", "failed to list tasks", err)
	}

	var expired []*domain.Task
	var failures []error
	for _, task := range tasks {
		if !task.ExpireIfDue(now) {
			continue
		}
		if err := s.store.Update(ctx, task); err != nil {
			s.logger.Error("failed to save timed out task", "error", err, "task_id", task.ID)
			failures = append(failures, err)
			continue
		}
		expired = append(expired, task)
	}
	s.mu.Unlock()

	for _, task := range expired {
		s.logger.Info("task timed out", "task_id", task.ID, "duration_seconds", task.Duration)
		s.emit(ctx, events.TaskTimedOut, task, now)
	}

	if len(failures) > 0 {
		return expired, NewTaskServiceError("sweep", "failed to save timed out tasks", errors.Join(failures...))
	}
	return expired, nil
}

// emit publishes a lifecycle event. Handler failures are logged and never
// fail the operation that produced the event.
func (s *taskServiceImpl) emit(ctx context.Context, eventType events.EventType, task *domain.Task, at time.Time) {
	event := events.NewTaskEvent(eventType, task.ID, string(task.Category), at)
	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit task event",
			"error", err,
			"event_type", eventType,
			"task_id", task.ID)
	}
}

// requestedCategory parses an optional category. Nil and empty both mean
// "no change requested".
func requestedCategory(raw *string) (*domain.Category, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	category, err := domain.ParseCategory(*raw)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// mergeFields copies the non-nil fields of params into task.
func mergeFields(task *domain.Task, params UpdateTaskParams) error {
	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return domain.NewValidationError("title", "cannot be empty", domain.ErrEmptyTitle)
		}
		task.Title = title
	}
	if params.Description != nil {
		description := strings.TrimSpace(*params.Description)
		if description == "" {
			return domain.NewValidationError("description", "cannot be empty", domain.ErrEmptyDescription)
		}
		task.Description = description
	}
	if params.Duration != nil {
		if *params.Duration <= 0 {
			return domain.NewValidationError("duration", "must be a positive number of seconds", domain.ErrInvalidDuration)
		}
		if *params.Duration > domain.MaxDurationSeconds {
			return domain.NewValidationError("duration", "must not exceed one year", domain.ErrInvalidDuration)
		}
		task.Duration = *params.Duration
	}
	return nil
}
