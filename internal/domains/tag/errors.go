package tag

import (
	"errors"
	"net/http"
)

var (
	// ErrTagNotFound is returned when no tag matches the requested id.
	ErrTagNotFound = errors.New("tag not found")

	// ErrDuplicateTagName is returned when a create or update would violate
	// the unique tag name invariant.
	ErrDuplicateTagName = errors.New("tag name already exists")

	// ErrInvalidTagID is returned for non-numeric path ids.
	ErrInvalidTagID = errors.New("invalid tag ID")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrTagNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateTagName):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidTagID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
