package user

import "context"

// Service owns account business logic.
type Service interface {
	// EnsureAdmin creates the admin account with a bcrypt-hashed password
	// if no account with that username exists yet. Idempotent.
	EnsureAdmin(ctx context.Context, username, password string) error
}
