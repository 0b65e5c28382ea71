package user

import "context"

// Repository is the user store contract. There is no HTTP surface for users;
// the repository exists for the admin account seeded at startup.
type Repository interface {
	GetByID(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create assigns an id and persists the user. Returns
	// ErrDuplicateUsername when the username is taken.
	Create(ctx context.Context, u *User) (*User, error)
}
