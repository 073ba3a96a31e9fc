package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"filmoteka/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Unexpected errors are logged and the detail is only exposed while gin runs
// in debug mode.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		respondInternalError(c, err)
	}
}

func respondInternalError(c *gin.Context, err error) {
	slog.Error("request failed", "path", c.FullPath(), "error", err)
	if gin.IsDebugging() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
