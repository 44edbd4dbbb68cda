package audit

import "errors"

var (
	// ErrEventValidation indicates event validation failed.
	ErrEventValidation = errors.New("event validation failed")

	// ErrStoreFailed wraps storage backend failures.
	ErrStoreFailed = errors.New("failed to store audit events")
)
