package routes

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"services-marketplace-server/database"
	"services-marketplace-server/services"
	"services-marketplace-server/utils"
)

// statusFor maps a store or service error to an HTTP status and a short title.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, utils.ErrPasswordTooLong):
		return http.StatusBadRequest, "Invalid request data"
	case errors.Is(err, database.ErrUniqueViolation):
		return http.StatusConflict, "Already exists"
	case errors.Is(err, database.ErrForeignKeyViolation):
		return http.StatusConflict, "Referenced row missing"
	case errors.Is(err, database.ErrNotNullViolation), errors.Is(err, database.ErrCheckViolation):
		return http.StatusUnprocessableEntity, "Constraint violated"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

func respondError(c *gin.Context, err error) {
	status, title := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
		message = "Unexpected error, please try again later"
	}
	c.JSON(status, gin.H{
		"error":   title,
		"message": message,
	})
}

func respondBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":   "Request too large",
			"message": "Request body exceeds maximum size limit",
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request data",
		"message": err.Error(),
	})
}

// parseID reads the :id path parameter. It aborts with a 400 and returns false on failure.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid ID",
			"message": "ID must be a positive integer",
		})
		return 0, false
	}
	return uint(id), true
}
