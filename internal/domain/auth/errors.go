package auth

import "errors"

var (
	ErrMissingCredentials = errors.New("auth: username and password are required")
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
	ErrInvalidToken       = errors.New("auth: invalid token")
)
