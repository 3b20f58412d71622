package leave

import "errors"

var (
	ErrInvalidRange        = errors.New("leave: invalid date range")
	ErrMissingField        = errors.New("leave: missing required field")
	ErrInsufficientBalance = errors.New("leave: insufficient leave balance")
	ErrAlreadyDecided      = errors.New("leave: request already decided")
	ErrNotFound            = errors.New("leave: request not found")
	ErrForbidden           = errors.New("leave: not allowed to decide this request")
)
