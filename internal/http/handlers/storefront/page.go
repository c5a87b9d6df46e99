package storefront

import (
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPolicyPage 返回站点政策文档
func (h *Handler) GetPolicyPage(c *gin.Context) {
	response.Success(c, h.PageService.Policy())
}
