package sanitizer

import "errors"

var (
	// ErrMaxDepthExceeded is returned when a value nests deeper than the configured limit.
	ErrMaxDepthExceeded = errors.New("sanitizer: maximum nesting depth exceeded")

	// ErrSanitizeFailed wraps an unexpected failure recovered during traversal.
	ErrSanitizeFailed = errors.New("sanitizer: failed to sanitize value")
)
