package domain

import "time"

// Transition is the outcome of a requested category change.
type Transition struct {
	Category Category
	// TimeoutAt is the deadline after the transition; nil means absent.
	TimeoutAt *time.Time
	// TimeoutChanged is true when the deadline was computed or cleared.
	TimeoutChanged bool
}

// ResolveTransition decides the category and timeout deadline that follow a
// category change request. requested is nil when the caller did not ask for
// a category change.
//
//   - Entering IN_PROGRESS from any other category computes now + duration.
//   - Leaving IN_PROGRESS for any other category clears the deadline.
//   - Anything else leaves the deadline untouched.
func ResolveTransition(
	current Category,
	timeoutAt *time.Time,
	duration int,
	requested *Category,
	now time.Time,
) Transition {
	result := Transition{Category: current, TimeoutAt: timeoutAt}
	if requested == nil {
		return result
	}

	next := *requested
	result.Category = next

	switch {
	case next == CategoryInProgress && current != CategoryInProgress:
		deadline := now.UTC().Add(time.Duration(duration) * time.Second)
		result.TimeoutAt = &deadline
		result.TimeoutChanged = true
	case current == CategoryInProgress && next != CategoryInProgress:
		result.TimeoutAt = nil
		result.TimeoutChanged = true
	}

	return result
}

// ApplyCategory applies ResolveTransition to t in place and reports whether
// the deadline changed. It does not touch UpdatedAt.
func (t *Task) ApplyCategory(requested *Category, now time.Time) bool {
	tr := ResolveTransition(t.Category, t.TimeoutAt, t.Duration, requested, now)
	t.Category = tr.Category
	t.TimeoutAt = tr.TimeoutAt
	return tr.TimeoutChanged
}

// IsExpired reports whether t is in progress with a deadline at or before now.
func (t *Task) IsExpired(now time.Time) bool {
	return t.Category == CategoryInProgress && t.TimeoutAt != nil && !t.TimeoutAt.After(now)
}

// ExpireIfDue moves an expired in-progress task to TIMEOUT, clears its
// deadline, and stamps UpdatedAt. The return value is the dirty flag: true
// only when t was changed.
func (t *Task) ExpireIfDue(now time.Time) bool {
	if !t.IsExpired(now) {
		return false
	}
	t.Category = CategoryTimeout
	t.TimeoutAt = nil
	t.Touch(now)
	return true
}
