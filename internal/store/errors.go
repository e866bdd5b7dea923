package store

import "errors"

var (
	// ErrNotFound is returned when a record with the requested id does not
	// exist in the collection. The merge engine relies on it to tell a
	// legitimate insert fallback apart from a genuine write failure.
	ErrNotFound = errors.New("record not found")
)
