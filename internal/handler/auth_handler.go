package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wedding/guesthub/internal/handler/middleware"
	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

type AuthHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	tokenSet, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "login failed")
		return
	}
	response.Success(c, tokenSet)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.AdminClaims(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, h.logger, err, "logout failed")
		return
	}
	response.Success(c, SuccessResponse{Success: true})
}
