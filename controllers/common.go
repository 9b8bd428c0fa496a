package controllers

import (
	"errors"
	"net/http"
	"time"

	"warmindo-pos/helpers"
	"warmindo-pos/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

var validate = validator.New()

const requestTimeout = 100 * time.Second

// respondError converts a service/repository failure into one JSON payload
// with a stable human-readable message. Partial submissions carry the order
// id so the caller knows the order exists and must not be resubmitted.
func respondError(c *gin.Context, err error) {
	var illegal *services.IllegalTransitionError
	var partial *services.PartialSubmissionError

	switch {
	case errors.Is(err, services.ErrInvalidOrderID), errors.Is(err, services.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &illegal):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": illegal.Error()})
	case errors.Is(err, services.ErrMissingTable),
		errors.Is(err, services.ErrNoNextStep),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrMenuUnavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &partial):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":              partial.Error(),
			"order_id":           partial.OrderID,
			"partial_submission": true,
		})
	case helpers.IsTransient(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store temporarily unavailable, try again shortly"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
