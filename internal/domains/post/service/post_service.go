package service

import (
	"context"
	"strings"

	"travelblog-backend/internal/domains/post"
	"travelblog-backend/internal/shared/utils"
)

type postService struct {
	repo post.Repository
}

// NewPostService wires the post business logic and the query/filter engine
// over a store backend.
func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

func (s *postService) List(ctx context.Context, tagIDs []int) ([]post.PostWithTag, error) {
	posts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterByTagSet(posts, tagIDs), nil
}

func (s *postService) GetByID(ctx context.Context, id int) (*post.PostWithTag, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*post.PostWithTag, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *postService) GetFeatured(ctx context.Context) (*post.PostWithTag, error) {
	return s.repo.GetFeatured(ctx)
}

func (s *postService) ListByTag(ctx context.Context, tagID int) ([]post.PostWithTag, error) {
	return s.repo.GetByTagID(ctx, tagID)
}

// Search runs the free-text match and then intersects with the tag set.
// The empty query returns an empty result by product choice: the search box
// with nothing typed shows nothing, not everything.
func (s *postService) Search(ctx context.Context, query string, tagIDs []int) ([]post.PostWithTag, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []post.PostWithTag{}, nil
	}

	posts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Store order (date descending) is preserved; there is no relevance
	// ranking.
	matched := []post.PostWithTag{}
	for _, p := range posts {
		if matchesQuery(&p.Post, query) {
			matched = append(matched, p)
		}
	}

	return filterByTagSet(matched, tagIDs), nil
}

func (s *postService) Create(ctx context.Context, req *post.CreatePostReq) (*post.Post, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	return s.repo.Create(ctx, &post.Post{
		Title:    req.Title,
		Slug:     slug,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		ImageURL: req.ImageURL,
		Author:   req.Author,
		Date:     req.Date,
		Featured: req.Featured,
		TagID:    req.TagID,
	})
}

func (s *postService) Update(ctx context.Context, id int, req *post.UpdatePostReq) (*post.Post, error) {
	return s.repo.Update(ctx, id, req.ToUpdate())
}

func (s *postService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// matchesQuery reports whether a lowercased query hits the post: substring in
// title, content or excerpt, or a subsequence of the title (characters in
// order, not necessarily contiguous).
func matchesQuery(p *post.Post, query string) bool {
	title := strings.ToLower(p.Title)

	if strings.Contains(title, query) ||
		strings.Contains(strings.ToLower(p.Content), query) ||
		strings.Contains(strings.ToLower(p.Excerpt), query) {
		return true
	}

	return isSubsequence(query, title)
}

// isSubsequence reports whether needle's characters appear in haystack in
// order, not necessarily contiguously.
func isSubsequence(needle, haystack string) bool {
	pos := 0
	for _, r := range needle {
		idx := strings.IndexRune(haystack[pos:], r)
		if idx < 0 {
			return false
		}
		pos += idx + len(string(r))
	}
	return true
}

// filterByTagSet keeps posts whose tag id is in the set (inclusive OR).
// The empty set means no tag filter.
func filterByTagSet(posts []post.PostWithTag, tagIDs []int) []post.PostWithTag {
	if len(tagIDs) == 0 {
		return posts
	}

	wanted := make(map[int]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		wanted[id] = struct{}{}
	}

	filtered := []post.PostWithTag{}
	for _, p := range posts {
		if p.TagID == nil {
			continue
		}
		if _, ok := wanted[*p.TagID]; ok {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
