// Package memstore is the in-memory storage backend. One Store holds every
// table behind a single RWMutex, implementing the same repository contracts
// as the Postgres backend: identical ordering, identical errors, identical
// join policy. Intended for tests and low-concurrency local runs.
package memstore

import (
	"sync"

	"travelblog-backend/internal/domains/post"
	"travelblog-backend/internal/domains/tag"
	"travelblog-backend/internal/domains/user"
)

// Store keeps all entities in maps keyed by id. Ids increase monotonically
// per table; the mutex serializes writers so id assignment and insertion are
// atomic. All reads and writes copy — callers never see live map values.
type Store struct {
	mu sync.RWMutex

	users map[int]user.User
	tags  map[int]tag.Tag
	posts map[int]post.Post

	nextUserID int
	nextTagID  int
	nextPostID int
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:      make(map[int]user.User),
		tags:       make(map[int]tag.Tag),
		posts:      make(map[int]post.Post),
		nextUserID: 1,
		nextTagID:  1,
		nextPostID: 1,
	}
}
