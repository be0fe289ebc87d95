package store

import "errors"

var (
	// ErrNotFound signals an unknown document id (or email on login).
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateEmail signals a registration against an existing email.
	ErrDuplicateEmail = errors.New("store: email already registered")
)
