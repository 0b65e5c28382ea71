package post

import (
	"time"

	"travelblog-backend/internal/domains/tag"
)

// Post is an article entity. TagID is a nullable reference to a tag; deleting
// the tag nullifies it rather than cascading.
type Post struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Content  string    `json:"content"`
	Excerpt  string    `json:"excerpt"`
	ImageURL string    `json:"imageUrl"`
	Author   string    `json:"author"`
	Date     time.Time `json:"date"`
	Featured bool      `json:"featured"`
	TagID    *int      `json:"tagId"`
}

// PostWithTag is the read-facing view entity: a post joined with its resolved
// tag. Tag is nil when TagID is null or no longer resolves; reads are total
// and never fail on a dangling reference.
type PostWithTag struct {
	Post
	Tag *tag.Tag `json:"tag,omitempty"`
}

// Update carries a partial post mutation. Nil fields are left untouched.
type Update struct {
	Title    *string
	Slug     *string
	Content  *string
	Excerpt  *string
	ImageURL *string
	Author   *string
	Date     *time.Time
	Featured *bool
	TagID    *int
}
