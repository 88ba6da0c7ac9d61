package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrShtrahman/mongo-M220-project/data_access"
	"github.com/MrShtrahman/mongo-M220-project/services"
)

// respondError maps an error onto its HTTP status and writes the JSON error
// body. Unclassified errors are logged and reported as a generic 500 so
// store internals never leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrNameTooShort),
		errors.Is(err, data_access.ErrInvalidFilter),
		errors.Is(err, data_access.ErrResultTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, data_access.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, data_access.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, data_access.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error, please try again later"})
	}
}
