package storefront

import (
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/http/response"

	"github.com/gin-gonic/gin"
)

const (
	sessionIDContextKey = "session_id"
	userTokenContextKey = "user_token"
)

// getSessionID 读取中间件写入的会话标识；缺失视为服务内部错误
func getSessionID(c *gin.Context) (string, bool) {
	value, ok := c.Get(sessionIDContextKey)
	if !ok {
		response.Error(c, response.CodeInternal, "session is not initialized")
		return "", false
	}
	sessionID, ok := value.(string)
	if !ok || sessionID == "" {
		response.Error(c, response.CodeInternal, "session is not initialized")
		return "", false
	}
	return sessionID, true
}

// getUserToken 读取鉴权中间件透传的原始令牌
func getUserToken(c *gin.Context) (string, bool) {
	value, ok := c.Get(userTokenContextKey)
	if !ok {
		response.Unauthorized(c, "login required")
		return "", false
	}
	token, ok := value.(string)
	if !ok || token == "" {
		response.Unauthorized(c, "login required")
		return "", false
	}
	return token, true
}
