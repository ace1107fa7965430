package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryPtr(c Category) *Category {
	return &c
}

func TestResolveTransition(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	existing := now.Add(-30 * time.Second)

	tests := []struct {
		name            string
		current         Category
		timeoutAt       *time.Time
		requested       *Category
		wantCategory    Category
		wantTimeoutAt   *time.Time
		wantTimeoutDiff bool
	}{
		{
			name:            "todo to in progress computes deadline",
			current:         CategoryTodo,
			requested:       categoryPtr(CategoryInProgress),
			wantCategory:    CategoryInProgress,
			wantTimeoutAt:   timePtr(now.Add(90 * time.Second)),
			wantTimeoutDiff: true,
		},
		{
			name:            "timeout back to in progress computes a fresh deadline",
			current:         CategoryTimeout,
			requested:       categoryPtr(CategoryInProgress),
			wantCategory:    CategoryInProgress,
			wantTimeoutAt:   timePtr(now.Add(90 * time.Second)),
			wantTimeoutDiff: true,
		},
		{
			name:            "in progress to done clears deadline",
			current:         CategoryInProgress,
			timeoutAt:       &existing,
			requested:       categoryPtr(CategoryDone),
			wantCategory:    CategoryDone,
			wantTimeoutDiff: true,
		},
		{
			name:            "in progress to timeout clears deadline",
			current:         CategoryInProgress,
			timeoutAt:       &existing,
			requested:       categoryPtr(CategoryTimeout),
			wantCategory:    CategoryTimeout,
			wantTimeoutDiff: true,
		},
		{
			name:          "in progress to in progress keeps deadline",
			current:       CategoryInProgress,
			timeoutAt:     &existing,
			requested:     categoryPtr(CategoryInProgress),
			wantCategory:  CategoryInProgress,
			wantTimeoutAt: &existing,
		},
		{
			name:          "no requested category keeps everything",
			current:       CategoryInProgress,
			timeoutAt:     &existing,
			wantCategory:  CategoryInProgress,
			wantTimeoutAt: &existing,
		},
		{
			name:         "todo to done has no deadline",
			current:      CategoryTodo,
			requested:    categoryPtr(CategoryDone),
			wantCategory: CategoryDone,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveTransition(tc.current, tc.timeoutAt, 90, tc.requested, now)

			assert.Equal(t, tc.wantCategory, got.Category)
			assert.Equal(t, tc.wantTimeoutDiff, got.TimeoutChanged)
			if tc.wantTimeoutAt == nil {
				assert.Nil(t, got.TimeoutAt)
			} else {
				require.NotNil(t, got.TimeoutAt)
				assert.True(t, tc.wantTimeoutAt.Equal(*got.TimeoutAt),
					"expected deadline %v, got %v", *tc.wantTimeoutAt, *got.TimeoutAt)
			}
		})
	}
}

func TestExpireIfDue(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("past deadline moves to timeout", func(t *testing.T) {
		task, err := NewTask("A", "B", 10, CategoryInProgress, start)
		require.NoError(t, err)

		sweepAt := start.Add(11 * time.Second)
		assert.True(t, task.ExpireIfDue(sweepAt))
		assert.Equal(t, CategoryTimeout, task.Category)
		assert.Nil(t, task.TimeoutAt)
		assert.Equal(t, sweepAt, task.UpdatedAt)
	})

	t.Run("deadline exactly now counts as expired", func(t *testing.T) {
		task, err := NewTask("A", "B", 10, CategoryInProgress, start)
		require.NoError(t, err)

		assert.True(t, task.ExpireIfDue(start.Add(10*time.Second)))
	})

	t.Run("future deadline is untouched", func(t *testing.T) {
		task, err := NewTask("A", "B", 10, CategoryInProgress, start)
		require.NoError(t, err)
		before := task.Clone()

		assert.False(t, task.ExpireIfDue(start.Add(5*time.Second)))
		assert.Equal(t, before, task)
	})

	t.Run("already timed out is a no-op", func(t *testing.T) {
		task, err := NewTask("A", "B", 10, CategoryInProgress, start)
		require.NoError(t, err)
		require.True(t, task.ExpireIfDue(start.Add(11*time.Second)))

		assert.False(t, task.ExpireIfDue(start.Add(time.Hour)))
		assert.Equal(t, CategoryTimeout, task.Category)
	})

	t.Run("in progress without deadline never expires", func(t *testing.T) {
		task := &Task{Category: CategoryInProgress}
		assert.False(t, task.ExpireIfDue(start.Add(time.Hour)))
	})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
