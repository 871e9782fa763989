package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trf-online/trf-backend/internal/apperrors"
)

// respondError maps service errors to HTTP responses. Workflow rejections
// carry enough detail for the client to correct itself; everything else
// collapses to a generic 500.
func respondError(c *gin.Context, err error, fallback string) {
	if transitionErr, ok := apperrors.AsInvalidTransition(err); ok {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "invalid transition",
			"expected": transitionErr.Expected,
			"actual":   transitionErr.Actual,
		})
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to perform this action"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrMissingRemarks):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Remarks are required for this action"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "The request changed while you were acting on it, please reload and retry"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
