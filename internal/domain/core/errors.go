package core

import "errors"

var (
	ErrDuplicateKey     = errors.New("employee: id already exists")
	ErrEmployeeNotFound = errors.New("employee: not found")
	ErrMissingField     = errors.New("employee: missing required field")
	ErrInvalidRole      = errors.New("employee: invalid role")
	ErrInvalidDivision  = errors.New("employee: invalid division")
	ErrWrongPassword    = errors.New("employee: old password does not match")
	ErrPasswordMismatch = errors.New("employee: password confirmation does not match")
)
