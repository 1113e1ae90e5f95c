package models

import "errors"

var (
	// ErrNotFound is returned when a lookup by id or slug has no match
	ErrNotFound = errors.New("not found")

	// ErrListFull is returned when a movie list already holds the maximum
	// number of items
	ErrListFull = errors.New("movie list is full")

	// ErrInvalidPasscode is returned on a failed admin login. There is no
	// lockout or backoff; the passcode is a plain string compare and is
	// not a security boundary.
	ErrInvalidPasscode = errors.New("invalid passcode")

	// ErrSessionNotFound is returned when an admin token is unknown or expired
	ErrSessionNotFound = errors.New("session not found or expired")

	// ErrNoDraft is returned when a draft operation runs with no draft open
	ErrNoDraft = errors.New("no draft in progress")
)
