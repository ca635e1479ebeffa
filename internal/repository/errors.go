package repository

import "errors"

var (
	// ErrNotFound means no record set has been saved yet.
	ErrNotFound = errors.New("not found")
	// ErrSchemaMismatch means saved data exists but does not have the shape
	// of a record set. Callers discard it and start over.
	ErrSchemaMismatch = errors.New("schema mismatch")
)
