package records

import "errors"

var (
	// ErrNotFound is returned when no record exists with the requested ID.
	ErrNotFound = errors.New("records: record not found")

	// ErrInvalidRecord is returned when a create or update fails validation.
	ErrInvalidRecord = errors.New("records: invalid record")
)
