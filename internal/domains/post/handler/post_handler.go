package handler

import (
	"net/http"
	"strconv"
	"strings"

	"travelblog-backend/internal/domains/post"
	"travelblog-backend/internal/shared/response"
	"travelblog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{service: svc}
}

// ========== READ: GET /api/posts?tags=1,2 ==========
func (h *PostHandler) List(c *gin.Context) {
	tagIDs, err := parseTagSet(c.Query("tags"))
	if err != nil {
		response.BadRequest(c, post.ErrInvalidTagID.Error())
		return
	}

	posts, err := h.service.List(c.Request.Context(), tagIDs)
	if err != nil {
		logger.Error("List posts failed", err)
		response.InternalServerError(c, "Failed to fetch blog posts")
		return
	}

	response.JSON(c, http.StatusOK, posts)
}

// ========== READ: GET /api/posts/featured ==========
// Registered before /api/posts/:id so "featured" is never parsed as an id.
func (h *PostHandler) GetFeatured(c *gin.Context) {
	featured, err := h.service.GetFeatured(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to fetch featured post")
		return
	}

	response.JSON(c, http.StatusOK, featured)
}

// ========== READ: GET /api/posts/search?q=&tags=1,2 ==========
func (h *PostHandler) Search(c *gin.Context) {
	tagIDs, err := parseTagSet(c.Query("tags"))
	if err != nil {
		response.BadRequest(c, post.ErrInvalidTagID.Error())
		return
	}

	posts, err := h.service.Search(c.Request.Context(), c.Query("q"), tagIDs)
	if err != nil {
		logger.Error("Search posts failed", err)
		response.InternalServerError(c, "Failed to search blog posts")
		return
	}

	response.JSON(c, http.StatusOK, posts)
}

// ========== READ: GET /api/posts/by-tag/:tagId ==========
func (h *PostHandler) ListByTag(c *gin.Context) {
	tagID, err := strconv.Atoi(c.Param("tagId"))
	if err != nil {
		response.BadRequest(c, post.ErrInvalidTagID.Error())
		return
	}

	posts, err := h.service.ListByTag(c.Request.Context(), tagID)
	if err != nil {
		logger.Error("List posts by tag failed", err)
		response.InternalServerError(c, "Failed to filter blog posts by tag")
		return
	}

	response.JSON(c, http.StatusOK, posts)
}

// ========== READ: GET /api/posts/by-slug/:slug ==========
func (h *PostHandler) GetBySlug(c *gin.Context) {
	p, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch blog post")
		return
	}

	response.JSON(c, http.StatusOK, p)
}

// ========== READ: GET /api/posts/:id ==========
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, post.ErrInvalidPostID.Error())
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to fetch blog post")
		return
	}

	response.JSON(c, http.StatusOK, p)
}

// ========== CREATE: POST /api/posts-create ==========
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostReq
	if !bindAndValidate(c, &req, func() error { return req.Validate() }) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to create blog post")
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// ========== UPDATE: PUT /api/posts/:id ==========
func (h *PostHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, post.ErrInvalidPostID.Error())
		return
	}

	var req post.UpdatePostReq
	if !bindAndValidate(c, &req, func() error { return req.Validate() }) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Failed to update blog post")
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// ========== DELETE: DELETE /api/posts/:id ==========
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, post.ErrInvalidPostID.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete blog post")
		return
	}

	response.NoContent(c)
}

// bindAndValidate parses the JSON body and runs the DTO's schema validation,
// writing the 400 response itself on failure.
func bindAndValidate(c *gin.Context, req interface{}, validate func() error) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid blog post data")
		return false
	}

	if err := validate(); err != nil {
		if verrs, ok := err.(validation.Errors); ok {
			response.ValidationFailed(c, "Invalid blog post data", verrs)
		} else {
			response.BadRequest(c, "Invalid blog post data")
		}
		return false
	}

	return true
}

// parseTagSet parses a comma-separated tag id list. Empty input means no
// filter.
func parseTagSet(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// respondError maps domain errors to status codes. Unexpected errors are
// logged and surfaced as an opaque 500.
func (h *PostHandler) respondError(c *gin.Context, err error, fallback string) {
	status := post.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, err)
		response.InternalServerError(c, fallback)
		return
	}
	response.Message(c, status, err.Error())
}
