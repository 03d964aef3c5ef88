package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"services-marketplace-server/middleware"
	"services-marketplace-server/models"
	"services-marketplace-server/store"
)

func callerID(c *gin.Context) uint {
	return c.GetUint(middleware.UserIDKey)
}

func forbid(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error":   "Forbidden",
		"message": message,
	})
}

// ownsUserID reports whether a user_id taken from a request body is the caller.
func ownsUserID(c *gin.Context, userID *uint) bool {
	return userID != nil && *userID == callerID(c)
}

// selfOnly lets a request on /users/:id through only for the caller's own id.
func selfOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if id != callerID(c) {
			forbid(c, "You can only modify your own account")
			return
		}
		c.Next()
	}
}

// ownedBy loads row :id and lets the request through only when the row
// belongs to the caller. A missing row is a 404.
func ownedBy[T any](repo store.Repo[T], owner func(*T) *uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		row, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		if !ownsUserID(c, owner(row)) {
			forbid(c, "This record belongs to another user")
			return
		}
		c.Next()
	}
}

func loginOwner(l *models.UserLogin) *uint { return l.UserID }

func workerOwner(w *models.Worker) *uint { return w.UserID }

func petitionerOwner(p *models.Petitioner) *uint { return p.UserID }

// createOwnRole attaches a worker or petitioner role to the caller only.
func createOwnRole[T any](repo store.Repo[T], key string, build func(models.RoleInput) T) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.RoleInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}
		if !ownsUserID(c, in.UserID) {
			forbid(c, "You can only take a role for your own account")
			return
		}

		row := build(in)
		if err := repo.Create(c.Request.Context(), &row); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Created successfully",
			key:       row,
		})
	}
}
