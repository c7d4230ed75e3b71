package availability

import "errors"

// Domain-specific errors for the availability package.
var (
	ErrEmptyQuery          = errors.New("query is empty")
	ErrCalendarUnavailable = errors.New("calendar source unavailable")
)
