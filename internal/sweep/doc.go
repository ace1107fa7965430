// Package sweep runs the periodic timeout check that moves in-progress
// tasks past their deadline into the Timeout category.
package sweep
