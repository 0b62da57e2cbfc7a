package db

import "errors"

// Domain-level error sentinels.
var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrDraftNotFound      = errors.New("draft not found")
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrInvalidTransition is returned when a status change would move a
	// record backwards or out of a final status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStorageCorrupt marks a stored value that is not valid JSON. Loads
	// recover from it by treating the value as empty; it is logged, never returned.
	ErrStorageCorrupt = errors.New("stored value is not valid JSON")
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrDraftNotFound) ||
		errors.Is(err, ErrSubmissionNotFound)
}
