package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreatePostReq is the request body for POST /api/posts-create.
// Slug is optional; when absent it is derived from the title.
type CreatePostReq struct {
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

func (r CreatePostReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Excerpt,
			validation.Required.Error("excerpt is required"),
			validation.Length(1, 1000),
		),
		validation.Field(&r.ImageURL,
			validation.Required.Error("imageUrl is required"),
			is.URL.Error("imageUrl must be a valid URL"),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
		),
		validation.Field(&r.TagID,
			validation.Min(1).Error("tagId must be a positive integer"),
		),
	)
}

// UpdatePostReq is the request body for PUT /api/posts/:id. Absent fields are
// preserved; only provided ones are merged into the stored post.
type UpdatePostReq struct {
	Title    *string    `json:"title"`
	Slug     *string    `json:"slug"`
	Content  *string    `json:"content"`
	Excerpt  *string    `json:"excerpt"`
	ImageURL *string    `json:"imageUrl"`
	Author   *string    `json:"author"`
	Date     *time.Time `json:"date"`
	Featured *bool      `json:"featured"`
	TagID    *int       `json:"tagId"`
}

func (r UpdatePostReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
		),
		validation.Field(&r.Slug,
			validation.NilOrNotEmpty.Error("slug cannot be empty"),
		),
		validation.Field(&r.Content,
			validation.NilOrNotEmpty.Error("content cannot be empty"),
		),
		validation.Field(&r.Excerpt,
			validation.NilOrNotEmpty.Error("excerpt cannot be empty"),
		),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != nil, is.URL.Error("imageUrl must be a valid URL")),
		),
		validation.Field(&r.Author,
			validation.NilOrNotEmpty.Error("author cannot be empty"),
		),
		validation.Field(&r.TagID,
			validation.Min(1).Error("tagId must be a positive integer"),
		),
	)
}

// ToUpdate converts the request into the store-level partial mutation.
func (r *UpdatePostReq) ToUpdate() *Update {
	return &Update{
		Title:    r.Title,
		Slug:     r.Slug,
		Content:  r.Content,
		Excerpt:  r.Excerpt,
		ImageURL: r.ImageURL,
		Author:   r.Author,
		Date:     r.Date,
		Featured: r.Featured,
		TagID:    r.TagID,
	}
}
