package storefront

import (
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListMyOrders 历史订单代理（需登录态）
func (h *Handler) ListMyOrders(c *gin.Context) {
	token, ok := getUserToken(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListMyOrders(c.Request.Context(), token)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, orders)
}
