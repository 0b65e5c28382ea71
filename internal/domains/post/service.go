package post

import "context"

// Service is the post business logic surface, including the query/filter
// engine behind listing, search and featured selection.
type Service interface {
	// List returns all posts, optionally filtered to a tag id set
	// (inclusive OR). An empty set means no filter.
	List(ctx context.Context, tagIDs []int) ([]PostWithTag, error)

	GetByID(ctx context.Context, id int) (*PostWithTag, error)
	GetBySlug(ctx context.Context, slug string) (*PostWithTag, error)
	GetFeatured(ctx context.Context) (*PostWithTag, error)
	ListByTag(ctx context.Context, tagID int) ([]PostWithTag, error)

	// Search matches query as a case-insensitive substring of title,
	// content or excerpt, or as a subsequence of the title. The empty
	// query returns an empty result. A non-empty tagIDs set intersects
	// the matches with posts whose tag is in the set.
	Search(ctx context.Context, query string, tagIDs []int) ([]PostWithTag, error)

	Create(ctx context.Context, req *CreatePostReq) (*Post, error)
	Update(ctx context.Context, id int, req *UpdatePostReq) (*Post, error)
	Delete(ctx context.Context, id int) error
}
