package post

import "context"

// Repository is the post store contract. Every read resolves the tag join at
// call time; list results are ordered by date descending. Both backends must
// behave identically, and callers always receive copies.
type Repository interface {
	// GetAll returns every post with its tag, newest first.
	GetAll(ctx context.Context) ([]PostWithTag, error)

	// GetByID returns the joined post or ErrPostNotFound.
	GetByID(ctx context.Context, id int) (*PostWithTag, error)

	// GetBySlug returns the joined post or ErrPostNotFound.
	GetBySlug(ctx context.Context, slug string) (*PostWithTag, error)

	// GetByTagID returns posts referencing the tag, newest first.
	GetByTagID(ctx context.Context, tagID int) ([]PostWithTag, error)

	// GetFeatured returns the featured post with the latest date, or
	// ErrNoFeaturedPost when none is flagged.
	GetFeatured(ctx context.Context) (*PostWithTag, error)

	// Create assigns an id and persists the post. Returns
	// ErrTagRefNotFound when TagID references a missing tag.
	Create(ctx context.Context, p *Post) (*Post, error)

	// Update merges the non-nil fields of upd into the stored post.
	// Returns ErrPostNotFound when absent.
	Update(ctx context.Context, id int, upd *Update) (*Post, error)

	// Delete removes the post. Returns ErrPostNotFound when absent.
	Delete(ctx context.Context, id int) error
}
