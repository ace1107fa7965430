// Package domain contains the task entity and the category lifecycle rules
// that govern it: which categories exist, when a timeout deadline is
// computed or cleared, and when an in-progress task has expired.
//
// Everything here is pure. Time is always passed in by the caller so the
// rules can be exercised deterministically.
package domain
