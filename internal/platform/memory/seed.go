package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard/internal/domain"
)

// SampleTasks returns the demo board: one task in each category, with
// timestamps relative to now.
func SampleTasks(now time.Time) []*domain.Task {
	now = now.UTC()
	inProgressDeadline := now.Add(2 * time.Hour)

	return []*domain.Task{
		{
			ID:          uuid.New().String(),
			Title:       "Complete project setup",
			Description: "Set up the initial project structure and dependencies",
			Category:    domain.CategoryDone,
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-12 * time.Hour),
			Duration:    3600,
		},
		{
			ID:          uuid.New().String(),
			Title:       "Implement task list component",
			Description: "Create a component to display all tasks with proper styling",
			Category:    domain.CategoryInProgress,
			CreatedAt:   now.Add(-12 * time.Hour),
			UpdatedAt:   now.Add(-6 * time.Hour),
			Duration:    7200,
			TimeoutAt:   &inProgressDeadline,
		},
		{
			ID:          uuid.New().String(),
			Title:       "Add form validation",
			Description: "Implement validation for the task creation form",
			Category:    domain.CategoryTodo,
			CreatedAt:   now.Add(-6 * time.Hour),
			UpdatedAt:   now.Add(-6 * time.Hour),
			Duration:    3600,
		},
		{
			ID:          uuid.New().String(),
			Title:       "Fix styling issues",
			Description: "Address responsive design problems on mobile devices",
			Category:    domain.CategoryTimeout,
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-12 * time.Hour),
			Duration:    1800,
		},
	}
}

// Seed stores every task in order, stopping at the first failure.
func (s *TaskStore) Seed(ctx context.Context, tasks []*domain.Task) error {
	for _, task := range tasks {
		if err := s.Create(ctx, task); err != nil {
			return fmt.Errorf("failed to seed task %q: %w", task.Title, err)
		}
	}
	s.logger.Info("seeded task store", "task_count", len(tasks))
	return nil
}
