package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"services-marketplace-server/services"
	"services-marketplace-server/store"
)

// Publisher announces newly posted services and requests.
type Publisher interface {
	Publish(msgType string, data interface{})
}

// Handler serves the /api/v1 surface.
type Handler struct {
	store     *store.Store
	auth      *services.AuthService
	publisher Publisher
}

func NewHandler(st *store.Store, auth *services.AuthService, publisher Publisher) *Handler {
	return &Handler{store: st, auth: auth, publisher: publisher}
}

// RegisterRoutes registers all API routes. Everything but health and the auth
// endpoints sits behind authMiddleware.
func RegisterRoutes(router *gin.Engine, h *Handler, authMiddleware gin.HandlerFunc, feed gin.HandlerFunc) {
	router.GET("/health", health)

	apiV1 := router.Group("/api/v1")
	apiV1.GET("/health", health)

	auth := apiV1.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		h.registerUserRoutes(protected)
		h.registerServiceRoutes(protected)
		h.registerRequestRoutes(protected)
		if feed != nil {
			protected.GET("/ws/postings", feed)
		}
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Services marketplace server is running",
		"time":    time.Now().UTC(),
	})
}
