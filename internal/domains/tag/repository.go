package tag

import "context"

// Repository is the tag store contract. Both backends (Postgres, in-memory)
// must behave identically; callers always receive copies, never live store
// state.
type Repository interface {
	// GetAll returns every tag in insertion (id) order.
	GetAll(ctx context.Context) ([]Tag, error)

	// GetByID returns the tag or ErrTagNotFound.
	GetByID(ctx context.Context, id int) (*Tag, error)

	// Create assigns an id and persists the tag.
	// Returns ErrDuplicateTagName when the name is taken.
	Create(ctx context.Context, t *Tag) (*Tag, error)

	// Update replaces name and icon. Returns ErrTagNotFound when absent,
	// ErrDuplicateTagName when the new name collides.
	Update(ctx context.Context, id int, name, icon string) (*Tag, error)

	// Delete removes the tag and nullifies tagId on dependent posts.
	// Returns ErrTagNotFound when absent.
	Delete(ctx context.Context, id int) error

	// IsEmpty reports whether the tag table has no rows. Used to gate
	// startup seeding.
	IsEmpty(ctx context.Context) (bool, error)
}
