// Package memory provides in-process implementations of the storage
// interfaces defined in the internal/store package. State lives only as
// long as the process does.
package memory
