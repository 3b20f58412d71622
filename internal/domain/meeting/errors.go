package meeting

import "errors"

var (
	ErrForbidden        = errors.New("meeting: only managers can schedule meetings")
	ErrMissingField     = errors.New("meeting: missing required field")
	ErrInvalidTimeRange = errors.New("meeting: end must be after start")
)
