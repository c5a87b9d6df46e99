package storefront

import (
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCatalogSection 返回指定板块的商品列表
// 板块：electronics / fashion / sports / featured；
// 可选 sort=price_asc|price_desc|discount_desc。
func (h *Handler) GetCatalogSection(c *gin.Context) {
	products, err := h.CatalogService.Section(c.Request.Context(), c.Param("section"), c.Query("sort"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{
		"section":  c.Param("section"),
		"products": products,
	})
}
