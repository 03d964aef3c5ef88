package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"services-marketplace-server/store"
)

// The handlers below serve the uniform part of every resource. key names the
// JSON field the row is returned under.

func createHandler[In any, T any](repo store.Repo[T], key string, build func(In) T, created func(*T)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in In
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}

		row := build(in)
		if err := repo.Create(c.Request.Context(), &row); err != nil {
			respondError(c, err)
			return
		}
		if created != nil {
			created(&row)
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Created successfully",
			key:       row,
		})
	}
}

func getHandler[T any](repo store.Repo[T], key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		row, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{key: row})
	}
}

// updateHandler replaces the whole row and answers with it as stored.
func updateHandler[In any, T any](repo store.Repo[T], key string, build func(In) T) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var in In
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindError(c, err)
			return
		}

		row := build(in)
		ctx := c.Request.Context()
		if err := repo.Update(ctx, id, &row); err != nil {
			respondError(c, err)
			return
		}
		updated, err := repo.Get(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Updated successfully",
			key:       updated,
		})
	}
}

func deleteHandler[T any](repo store.Repo[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := repo.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
	}
}

// childrenHandler lists the rows that reference :id through one foreign key.
// A parent with no children yields an empty list, not a 404.
func childrenHandler[P any, T any](parents store.Repo[P], key string, list func(c *gin.Context, id uint) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if _, err := parents.Get(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		rows, err := list(c, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{key: rows, "count": len(rows)})
	}
}

// childHandler returns the single row that references :id, 404 when there is none.
func childHandler[T any](key string, find func(c *gin.Context, id uint) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		row, err := find(c, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{key: row})
	}
}
