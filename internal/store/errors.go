package store

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrMissingFields = errors.New("missing required fields")
	ErrUsernameTaken = errors.New("username already taken")
)
