package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arunmaroon/avinci-main-sub006/internal/service"
)

// AuthHandler expone el login del panel de administración.
type AuthHandler struct {
	logger *zap.Logger
	auth   *service.AuthService
}

func NewAuthHandler(logger *zap.Logger, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{logger: logger, auth: auth}
}

// Login maneja POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "auth disabled"})
			return
		}
		h.logger.Warn("login rejected", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
