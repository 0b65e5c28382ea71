package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelblog-backend/internal/domains/post"
	postservice "travelblog-backend/internal/domains/post/service"
	"travelblog-backend/internal/domains/tag"
	tagservice "travelblog-backend/internal/domains/tag/service"
	"travelblog-backend/internal/infrastructure/memstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	router *gin.Engine
	posts  post.Service
	tags   tag.Service
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	postSvc := postservice.NewPostService(store.PostRepository())
	tagSvc := tagservice.NewTagService(store.TagRepository())
	h := NewPostHandler(postSvc)

	router := gin.New()
	api := router.Group("/api")
	posts := api.Group("/posts")
	posts.GET("", h.List)
	posts.GET("/featured", h.GetFeatured)
	posts.GET("/search", h.Search)
	posts.GET("/by-tag/:tagId", h.ListByTag)
	posts.GET("/by-slug/:slug", h.GetBySlug)
	posts.GET("/:id", h.GetByID)
	posts.PUT("/:id", h.Update)
	posts.DELETE("/:id", h.Delete)
	api.POST("/posts-create", h.Create)

	return &env{router: router, posts: postSvc, tags: tagSvc}
}

func (e *env) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) seedPost(t *testing.T, title string, day string, featured bool, tagID *int) *post.Post {
	t.Helper()
	date, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)

	created, err := e.posts.Create(context.Background(), &post.CreatePostReq{
		Title:    title,
		Content:  "content of " + title,
		Excerpt:  "excerpt of " + title,
		ImageURL: "https://example.com/img.jpg",
		Author:   "Elena",
		Date:     date,
		Featured: featured,
		TagID:    tagID,
	})
	require.NoError(t, err)
	return created
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []post.PostWithTag {
	t.Helper()
	var out []post.PostWithTag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListPosts(t *testing.T) {
	e := newEnv(t)
	e.seedPost(t, "Older", "2023-01-01", false, nil)
	e.seedPost(t, "Newer", "2023-06-01", false, nil)

	w := e.request(t, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeList(t, w)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer", got[0].Title)
	assert.Equal(t, "Older", got[1].Title)
}

func TestListPosts_TagFilterQueryParam(t *testing.T) {
	e := newEnv(t)
	created, err := e.tags.Create(context.Background(), &tag.TagReq{Name: "Mountains", Icon: "fa-mountain"})
	require.NoError(t, err)

	e.seedPost(t, "Tagged", "2023-02-01", false, &created.ID)
	e.seedPost(t, "Untagged", "2023-03-01", false, nil)

	w := e.request(t, http.MethodGet, fmt.Sprintf("/api/posts?tags=%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeList(t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "Tagged", got[0].Title)
	require.NotNil(t, got[0].Tag)
	assert.Equal(t, "Mountains", got[0].Tag.Name)

	w = e.request(t, http.MethodGet, "/api/posts?tags=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFeaturedPost(t *testing.T) {
	e := newEnv(t)

	// No featured post yet.
	w := e.request(t, http.MethodGet, "/api/posts/featured", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "No featured post found"}`, w.Body.String())

	e.seedPost(t, "Older Featured", "2023-01-01", true, nil)
	e.seedPost(t, "Newer Featured", "2023-06-01", true, nil)

	w = e.request(t, http.MethodGet, "/api/posts/featured", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got post.PostWithTag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Newer Featured", got.Title)
}

func TestSearchPosts(t *testing.T) {
	e := newEnv(t)
	e.seedPost(t, "Dracula's Castle", "2023-11-10", false, nil)
	e.seedPost(t, "Danube Delta", "2023-06-18", false, nil)

	// Empty query is an empty list, not an error and not everything.
	w := e.request(t, http.MethodGet, "/api/posts/search", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = e.request(t, http.MethodGet, "/api/posts/search?q=dracula", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeList(t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "Dracula's Castle", got[0].Title)
}

func TestGetPostByID(t *testing.T) {
	e := newEnv(t)
	created := e.seedPost(t, "Bucharest", "2023-05-05", false, nil)

	w := e.request(t, http.MethodGet, fmt.Sprintf("/api/posts/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got post.PostWithTag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Bucharest", got.Title)

	w = e.request(t, http.MethodGet, "/api/posts/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "Post not found"}`, w.Body.String())

	w = e.request(t, http.MethodGet, "/api/posts/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPostBySlug(t *testing.T) {
	e := newEnv(t)
	created := e.seedPost(t, "Painted Monasteries", "2023-07-22", false, nil)
	require.Equal(t, "painted-monasteries", created.Slug)

	w := e.request(t, http.MethodGet, "/api/posts/by-slug/painted-monasteries", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.request(t, http.MethodGet, "/api/posts/by-slug/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPostsByTag(t *testing.T) {
	e := newEnv(t)
	created, err := e.tags.Create(context.Background(), &tag.TagReq{Name: "Nature", Icon: "fa-tree"})
	require.NoError(t, err)
	e.seedPost(t, "Danube Delta", "2023-06-18", false, &created.ID)

	w := e.request(t, http.MethodGet, fmt.Sprintf("/api/posts/by-tag/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	// Unknown tag filters to an empty list rather than erroring.
	w = e.request(t, http.MethodGet, "/api/posts/by-tag/9999", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreatePost(t *testing.T) {
	e := newEnv(t)

	w := e.request(t, http.MethodPost, "/api/posts-create", gin.H{
		"title":    "New Adventure",
		"content":  "Full text.",
		"excerpt":  "Teaser.",
		"imageUrl": "https://example.com/a.jpg",
		"author":   "Elena",
		"date":     "2023-04-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got post.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotZero(t, got.ID)
	assert.Equal(t, "new-adventure", got.Slug)
	assert.False(t, got.Featured)
}

func TestCreatePost_ValidationErrors(t *testing.T) {
	e := newEnv(t)

	w := e.request(t, http.MethodPost, "/api/posts-create", gin.H{
		"title":    "",
		"imageUrl": "not a url",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid blog post data", body.Message)
	assert.Contains(t, body.Errors, "title")
	assert.Contains(t, body.Errors, "imageUrl")
}

func TestCreatePost_UnknownTagRef(t *testing.T) {
	e := newEnv(t)

	w := e.request(t, http.MethodPost, "/api/posts-create", gin.H{
		"title":    "Orphan",
		"content":  "c",
		"excerpt":  "e",
		"imageUrl": "https://example.com/a.jpg",
		"author":   "Elena",
		"date":     "2023-04-01T00:00:00Z",
		"tagId":    42,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message": "referenced tag not found"}`, w.Body.String())
}

func TestUpdatePost(t *testing.T) {
	e := newEnv(t)
	created := e.seedPost(t, "Draft", "2023-04-01", false, nil)

	w := e.request(t, http.MethodPut, fmt.Sprintf("/api/posts/%d", created.ID), gin.H{
		"title":    "Published",
		"featured": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got post.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Published", got.Title)
	assert.True(t, got.Featured)
	assert.Equal(t, created.Slug, got.Slug)

	w = e.request(t, http.MethodPut, "/api/posts/9999", gin.H{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost(t *testing.T) {
	e := newEnv(t)
	created := e.seedPost(t, "Ephemeral", "2023-04-01", false, nil)

	w := e.request(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = e.request(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
