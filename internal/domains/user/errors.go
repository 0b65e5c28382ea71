package user

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the id or username.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername is returned when a create would violate the
	// unique username invariant.
	ErrDuplicateUsername = errors.New("username already exists")
)
