package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"services-marketplace-server/models"
	"services-marketplace-server/services"
)

// SignInRequest represents the sign in request
type SignInRequest struct {
	Main     string `json:"main" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// register creates a user and its first login
func (h *Handler) register(c *gin.Context) {
	var req services.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, login, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
		"login":   login,
	})
}

// login exchanges a main/password pair for an access token
func (h *Handler) login(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Main, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *Handler) createLogin(c *gin.Context) {
	var req models.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if !ownsUserID(c, req.UserID) {
		forbid(c, "You can only add logins to your own account")
		return
	}

	login, err := h.auth.AddLogin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Created successfully",
		"login":   login,
	})
}

// updateLogin runs behind ownedBy, so the stored row already belongs to the caller.
func (h *Handler) updateLogin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if !ownsUserID(c, req.UserID) {
		forbid(c, "A login cannot be moved to another account")
		return
	}

	login, err := h.auth.ReplaceLogin(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Updated successfully",
		"login":   login,
	})
}
