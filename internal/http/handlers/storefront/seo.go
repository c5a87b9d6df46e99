package storefront

import (
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetPageMeta 返回指定路由的 SEO 元数据与 head 片段
func (h *Handler) GetPageMeta(c *gin.Context) {
	meta := h.SEOService.MetaFor(c.Request.Context(), c.Query("path"))
	response.Success(c, meta)
}
