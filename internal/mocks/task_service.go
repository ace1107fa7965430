package mocks

import (
	"context"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	CreateTaskFn   func(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error)
	GetTaskFn      func(ctx context.Context, id string) (*domain.Task, error)
	UpdateTaskFn   func(ctx context.Context, id string, params service.UpdateTaskParams) (*domain.Task, error)
	DeleteTaskFn   func(ctx context.Context, id string) error
	ListTasksFn    func(ctx context.Context) ([]*domain.Task, error)
	SweepExpiredFn func(ctx context.Context) ([]*domain.Task, error)

	// Default return values
	Task         *domain.Task
	Tasks        []*domain.Task
	DefaultError error
}

var _ service.TaskService = (*MockTaskService)(nil)

// CreateTask implements service.TaskService.CreateTask
func (m *MockTaskService) CreateTask(ctx context.Context, params service.CreateTaskParams) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, params)
	}
	return m.Task, m.DefaultError
}

// GetTask implements service.TaskService.GetTask
func (m *MockTaskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// UpdateTask implements service.TaskService.UpdateTask
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	id string,
	params service.UpdateTaskParams,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, id, params)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements service.TaskService.DeleteTask
func (m *MockTaskService) DeleteTask(ctx context.Context, id string) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return m.DefaultError
}

// ListTasks implements service.TaskService.ListTasks
func (m *MockTaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return m.Tasks, m.DefaultError
}

// SweepExpired implements service.TaskService.SweepExpired
func (m *MockTaskService) SweepExpired(ctx context.Context) ([]*domain.Task, error) {
	if m.SweepExpiredFn != nil {
		return m.SweepExpiredFn(ctx)
	}
	return m.Tasks, m.DefaultError
}
