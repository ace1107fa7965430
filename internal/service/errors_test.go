package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/taskboard/internal/domain"
	"github.com/phrazzld/taskboard/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestNewTaskServiceError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, NewTaskServiceError("get_task", "msg", nil))
	})

	t.Run("store not found maps to sentinel", func(t *testing.T) {
		err := NewTaskServiceError("get_task", "msg", fmt.Errorf("lookup: %w", store.ErrTaskNotFound))
		assert.Same(t, ErrTaskNotFound, err)
	})

	t.Run("validation error passes through", func(t *testing.T) {
		vErr := domain.NewValidationError("title", "is required", domain.ErrEmptyTitle)
		err := NewTaskServiceError("create_task", "msg", vErr)
		assert.Same(t, vErr, err)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewTaskServiceError("update_task", "failed to save task", cause)

		var svcErr *TaskServiceError
		assert.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "update_task", svcErr.Operation)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "task service update_task failed: failed to save task: boom", err.Error())
	})

	t.Run("message without cause", func(t *testing.T) {
		err := &TaskServiceError{Operation: "create_service", Message: "store cannot be nil"}
		assert.Equal(t, "task service create_service failed: store cannot be nil", err.Error())
	})
}
