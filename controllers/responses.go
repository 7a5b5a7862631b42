package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-restaurant-orders/apperrors"
)

// requestTimeout bounds every handler's store calls.
const requestTimeout = 100 * time.Second

// respondError maps the error taxonomy onto the HTTP contract: validation and
// referential failures are 400, missing targets 404, store failures 500. Store
// causes are never leaked to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err) || apperrors.IsReferential(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		var storeErr *apperrors.StoreError
		if errors.As(err, &storeErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": storeErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func respondBindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
}
