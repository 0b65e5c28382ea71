package post

import (
	"errors"
	"net/http"
)

var (
	// ErrPostNotFound is returned when no post matches the id or slug.
	ErrPostNotFound = errors.New("Post not found")

	// ErrNoFeaturedPost is returned when no post is flagged featured.
	ErrNoFeaturedPost = errors.New("No featured post found")

	// ErrTagRefNotFound is returned when a write references a tag id that
	// does not exist.
	ErrTagRefNotFound = errors.New("referenced tag not found")

	// ErrInvalidPostID is returned for non-numeric path ids.
	ErrInvalidPostID = errors.New("Invalid post ID")

	// ErrInvalidTagID is returned for non-numeric tag path ids.
	ErrInvalidTagID = errors.New("Invalid tag ID")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound), errors.Is(err, ErrNoFeaturedPost):
		return http.StatusNotFound
	case errors.Is(err, ErrTagRefNotFound),
		errors.Is(err, ErrInvalidPostID),
		errors.Is(err, ErrInvalidTagID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
