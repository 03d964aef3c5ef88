package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"services-marketplace-server/database"
	"services-marketplace-server/models"
	"services-marketplace-server/types"
)

// Context keys set by AuthMiddleware.
const (
	UserIDKey  = "user_id"
	LoginIDKey = "login_id"
)

// TokenParser validates a bearer token.
type TokenParser interface {
	ParseToken(token string) (*types.Claims, error)
}

// UserFinder loads the user a token was issued for.
type UserFinder interface {
	Get(ctx context.Context, id uint) (*models.User, error)
}

// AuthMiddleware validates JWT tokens and sets user context. A token whose
// user has since been deleted is rejected.
func AuthMiddleware(tokens TokenParser, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Authorization header required",
				"message": "Please provide a valid token",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token format",
				"message": "Token must be in format: Bearer <token>",
			})
			return
		}

		claims, err := tokens.ParseToken(tokenString)
		if err != nil {
			log.Printf("🔍 AuthMiddleware: token rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": "Token is invalid or expired",
			})
			return
		}

		if _, err := users.Get(c.Request.Context(), claims.UserID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "User not found",
					"message": "User associated with token not found",
				})
				return
			}
			log.Printf("❌ AuthMiddleware: loading user %d: %v", claims.UserID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal error",
				"message": "Unexpected error, please try again later",
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(LoginIDKey, claims.LoginID)
		c.Next()
	}
}
