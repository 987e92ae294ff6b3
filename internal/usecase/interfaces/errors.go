package interfaces

import "errors"

// Storage-level outcomes every repository implementation reports with these values,
// so use cases can classify them with errors.Is without knowing the driver.
var (
	// ErrAlreadyExists is returned when a unique constraint rejects a write.
	ErrAlreadyExists = errors.New("already exists")
	// ErrConditionFailed is returned when a guarded update matched no row.
	ErrConditionFailed = errors.New("condition failed")
	// ErrNotFound is returned by updates addressed at a missing row.
	ErrNotFound = errors.New("not found")
)
