package api

import (
	"time"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/service"
)

// CreateTaskRequest defines the payload for POST /tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	// Duration is the time budget in seconds.
	Duration int `json:"duration" validate:"required,gt=0,max=31536000"`
	// Category defaults to "To Do" when omitted.
	Category string `json:"category,omitempty"`
}

// UpdateTaskRequest defines the payload for PUT /tasks/{id}.
// Omitted fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Duration    *int    `json:"duration,omitempty" validate:"omitempty,gt=0,max=31536000"`
}

// TaskResponse is the JSON shape of a task.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Duration    int        `json:"duration"`
	TimeoutAt   *time.Time `json:"timeoutAt,omitempty"`
}

func (req CreateTaskRequest) toParams() service.CreateTaskParams {
	return service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Duration:    req.Duration,
	}
}

func (req UpdateTaskRequest) toParams() service.UpdateTaskParams {
	return service.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Duration:    req.Duration,
	}
}

// taskToResponse converts a domain task to its response shape.
func taskToResponse(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Category:    string(task.Category),
		CreatedAt:   task.CreatedAt.UTC(),
		UpdatedAt:   task.UpdatedAt.UTC(),
		Duration:    task.Duration,
	}
	if task.TimeoutAt != nil {
		ts := task.TimeoutAt.UTC()
		resp.TimeoutAt = &ts
	}
	return resp
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
