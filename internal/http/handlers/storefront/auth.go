package storefront

import (
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 登录代理
func (h *Handler) Login(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}
	result, err := h.AuthService.Login(c.Request.Context(), sessionID, req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.Success(c, result)
}

// Register 注册代理
func (h *Handler) Register(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name, email and password are required")
		return
	}
	result, err := h.AuthService.Register(c.Request.Context(), sessionID, req.Name, req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.Success(c, result)
}

// Logout 登出：清空会话
func (h *Handler) Logout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.AuthService.Logout(c.Request.Context(), sessionID); err != nil {
		response.Error(c, response.CodeInternal, "logout failed")
		return
	}
	response.SuccessWithMsg(c, "logged out", nil)
}
