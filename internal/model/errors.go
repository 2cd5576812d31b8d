package model

import "errors"

var (
	// ErrNotFound is returned when a user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a store rejects a write because the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
)
