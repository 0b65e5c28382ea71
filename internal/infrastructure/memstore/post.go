package memstore

import (
	"context"
	"sort"

	"travelblog-backend/internal/domains/post"
)

// postRepository adapts the store to the post domain contract.
type postRepository struct {
	s *Store
}

// PostRepository returns the in-memory post store.
func (s *Store) PostRepository() post.Repository {
	return &postRepository{s: s}
}

// clonePost deep-copies a post so callers can never mutate store state
// through the returned value.
func clonePost(p post.Post) post.Post {
	if p.TagID != nil {
		tagID := *p.TagID
		p.TagID = &tagID
	}
	return p
}

// join resolves the tag reference at read time on a copy of the post. A null
// or dangling tag id yields a nil tag; reads never fail on integrity faults.
// Caller must hold at least a read lock.
func (s *Store) join(p post.Post) post.PostWithTag {
	pt := post.PostWithTag{Post: clonePost(p)}
	if p.TagID != nil {
		if t, ok := s.tags[*p.TagID]; ok {
			pt.Tag = &t
		}
	}
	return pt
}

// sortByDateDesc orders newest first, id descending as a tiebreaker so equal
// dates still produce a deterministic order.
func sortByDateDesc(posts []post.PostWithTag) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Date.Equal(posts[j].Date) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].Date.After(posts[j].Date)
	})
}

func (r *postRepository) GetAll(_ context.Context) ([]post.PostWithTag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	posts := make([]post.PostWithTag, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		posts = append(posts, r.s.join(p))
	}
	sortByDateDesc(posts)

	return posts, nil
}

func (r *postRepository) GetByID(_ context.Context, id int) (*post.PostWithTag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}

	pt := r.s.join(p)
	return &pt, nil
}

func (r *postRepository) GetBySlug(_ context.Context, slug string) (*post.PostWithTag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	// Slugs are intended unique but not enforced; the lowest id wins so
	// lookups stay deterministic.
	var found *post.Post
	for _, p := range r.s.posts {
		if p.Slug != slug {
			continue
		}
		if found == nil || p.ID < found.ID {
			p := p
			found = &p
		}
	}

	if found == nil {
		return nil, post.ErrPostNotFound
	}

	pt := r.s.join(*found)
	return &pt, nil
}

func (r *postRepository) GetByTagID(_ context.Context, tagID int) ([]post.PostWithTag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	posts := []post.PostWithTag{}
	for _, p := range r.s.posts {
		if p.TagID != nil && *p.TagID == tagID {
			posts = append(posts, r.s.join(p))
		}
	}
	sortByDateDesc(posts)

	return posts, nil
}

func (r *postRepository) GetFeatured(_ context.Context) (*post.PostWithTag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	// Multiple featured posts are possible; the latest date wins.
	featured := []post.PostWithTag{}
	for _, p := range r.s.posts {
		if p.Featured {
			featured = append(featured, r.s.join(p))
		}
	}
	if len(featured) == 0 {
		return nil, post.ErrNoFeaturedPost
	}
	sortByDateDesc(featured)

	return &featured[0], nil
}

func (r *postRepository) Create(_ context.Context, p *post.Post) (*post.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.TagID != nil {
		if _, ok := r.s.tags[*p.TagID]; !ok {
			return nil, post.ErrTagRefNotFound
		}
	}

	created := clonePost(*p)
	created.ID = r.s.nextPostID
	r.s.nextPostID++
	r.s.posts[created.ID] = created

	result := clonePost(created)
	return &result, nil
}

func (r *postRepository) Update(_ context.Context, id int, upd *post.Update) (*post.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Slug != nil {
		p.Slug = *upd.Slug
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.Excerpt != nil {
		p.Excerpt = *upd.Excerpt
	}
	if upd.ImageURL != nil {
		p.ImageURL = *upd.ImageURL
	}
	if upd.Author != nil {
		p.Author = *upd.Author
	}
	if upd.Date != nil {
		p.Date = *upd.Date
	}
	if upd.Featured != nil {
		p.Featured = *upd.Featured
	}
	if upd.TagID != nil {
		if _, ok := r.s.tags[*upd.TagID]; !ok {
			return nil, post.ErrTagRefNotFound
		}
		tagID := *upd.TagID
		p.TagID = &tagID
	}

	r.s.posts[id] = p

	result := clonePost(p)
	return &result, nil
}

func (r *postRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return post.ErrPostNotFound
	}

	delete(r.s.posts, id)
	return nil
}
