package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FarmEase/farmease_backend/internal/apperrors"
)

// respondServiceError maps service-layer errors to HTTP responses. fallback is
// the message used for unclassified errors, which are reported as 500.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to perform this action"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCapacityFull):
		c.JSON(http.StatusConflict, gin.H{"error": "This work is fully booked"})
	case errors.Is(err, apperrors.ErrNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": "This work is no longer active"})
	case errors.Is(err, apperrors.ErrDeadlinePassed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "The deadline for this action has passed"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
