package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The public API serializes entities directly: success bodies are the raw
// entity or list, errors are {"message": ...}, and validation failures carry
// an additional field-keyed "errors" object. Admin console and public pages
// both depend on these exact shapes.

func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Message(c, http.StatusConflict, message)
}

// InternalServerError returns an opaque 500. The underlying error is logged by
// the caller, never sent to the client.
func InternalServerError(c *gin.Context, message string) {
	Message(c, http.StatusInternalServerError, message)
}

// ValidationFailed returns 400 with a structured list of field errors.
// ozzo's validation.Errors marshals to {"field": "reason", ...}.
func ValidationFailed(c *gin.Context, message string, errs interface{}) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"errors":  errs,
	})
}
