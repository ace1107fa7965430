// Package service contains the application use cases for the task board.
// It orchestrates the domain lifecycle rules and the task store (defined in
// internal/store) to fulfill API operations, and publishes lifecycle events.
//
// All mutations, including the periodic timeout sweep, run under a single
// writer lock so a sweep and a concurrent update never interleave their
// reads and writes of the same task.
package service
