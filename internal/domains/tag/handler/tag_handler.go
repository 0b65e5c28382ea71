package handler

import (
	"errors"
	"net/http"
	"strconv"

	"travelblog-backend/internal/domains/tag"
	"travelblog-backend/internal/shared/response"
	"travelblog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type TagHandler struct {
	service tag.Service
}

func NewTagHandler(svc tag.Service) *TagHandler {
	return &TagHandler{service: svc}
}

// ========== READ: GET /api/tags ==========
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("List tags failed", err)
		response.InternalServerError(c, "Failed to fetch tags")
		return
	}

	response.JSON(c, http.StatusOK, tags)
}

// ========== CREATE: POST /api/tags-create ==========
func (h *TagHandler) Create(c *gin.Context) {
	var req tag.TagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid tag data")
		return
	}

	if err := req.Validate(); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ValidationFailed(c, "Invalid tag data", verrs)
			return
		}
		response.BadRequest(c, "Invalid tag data")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, "Failed to create tag")
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// ========== UPDATE: PUT /api/tags/:id ==========
func (h *TagHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, tag.ErrInvalidTagID.Error())
		return
	}

	var req tag.TagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid tag data")
		return
	}

	if err := req.Validate(); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ValidationFailed(c, "Invalid tag data", verrs)
			return
		}
		response.BadRequest(c, "Invalid tag data")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Failed to update tag")
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// ========== DELETE: DELETE /api/tags/:id ==========
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, tag.ErrInvalidTagID.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Failed to delete tag")
		return
	}

	response.NoContent(c)
}

// respondError maps domain errors to status codes. Unexpected errors are
// logged and surfaced as an opaque 500.
func (h *TagHandler) respondError(c *gin.Context, err error, fallback string) {
	status := tag.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, err)
		response.InternalServerError(c, fallback)
		return
	}
	response.Message(c, status, err.Error())
}
