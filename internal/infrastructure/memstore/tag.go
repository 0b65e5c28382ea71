package memstore

import (
	"context"
	"sort"

	"travelblog-backend/internal/domains/tag"
)

// tagRepository adapts the store to the tag domain contract.
type tagRepository struct {
	s *Store
}

// TagRepository returns the in-memory tag store.
func (s *Store) TagRepository() tag.Repository {
	return &tagRepository{s: s}
}

func (r *tagRepository) GetAll(_ context.Context) ([]tag.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tags := make([]tag.Tag, 0, len(r.s.tags))
	for _, t := range r.s.tags {
		tags = append(tags, t)
	}

	// Ids are assigned in insertion order, so sorting by id restores it.
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })

	return tags, nil
}

func (r *tagRepository) GetByID(_ context.Context, id int) (*tag.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tags[id]
	if !ok {
		return nil, tag.ErrTagNotFound
	}

	return &t, nil
}

func (r *tagRepository) Create(_ context.Context, t *tag.Tag) (*tag.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.tags {
		if existing.Name == t.Name {
			return nil, tag.ErrDuplicateTagName
		}
	}

	created := tag.Tag{
		ID:   r.s.nextTagID,
		Name: t.Name,
		Icon: t.Icon,
	}
	r.s.nextTagID++
	r.s.tags[created.ID] = created

	return &created, nil
}

func (r *tagRepository) Update(_ context.Context, id int, name, icon string) (*tag.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tags[id]
	if !ok {
		return nil, tag.ErrTagNotFound
	}

	for _, existing := range r.s.tags {
		if existing.ID != id && existing.Name == name {
			return nil, tag.ErrDuplicateTagName
		}
	}

	t.Name = name
	t.Icon = icon
	r.s.tags[id] = t

	return &t, nil
}

func (r *tagRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tags[id]; !ok {
		return tag.ErrTagNotFound
	}

	delete(r.s.tags, id)

	// Nullify dependents, same policy as the relational FK.
	for postID, p := range r.s.posts {
		if p.TagID != nil && *p.TagID == id {
			p.TagID = nil
			r.s.posts[postID] = p
		}
	}

	return nil
}

func (r *tagRepository) IsEmpty(_ context.Context) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.tags) == 0, nil
}
