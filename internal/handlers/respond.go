package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"carequest/internal/services"
)

// writeServiceError maps a service error to an HTTP response. Datastore
// detail stays in the log; the client only sees the generic message.
func writeServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   validationErr.Error(),
		})
	case errors.Is(err, services.ErrDuplicateCheckIn):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "You have already checked in today. Come back tomorrow!",
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Not found",
		})
	default:
		log.Printf("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Something went wrong, please try again",
		})
	}
}
