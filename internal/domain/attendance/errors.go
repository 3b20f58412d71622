package attendance

import "errors"

var (
	ErrAlreadySubmitted = errors.New("attendance: already submitted for this day")
	ErrInvalidStatus    = errors.New("attendance: invalid status")
)
