package storefront

import (
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/http/response"
	"github.com/santoshportfoliosite-art/ecom-frontend-sub001/internal/models"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 添加购物车请求
type AddCartItemRequest struct {
	ID              string       `json:"id" binding:"required"`
	Name            string       `json:"name"`
	Brand           string       `json:"brand"`
	Image           string       `json:"image"`
	UnitPrice       models.Money `json:"unit_price"`
	DiscountPercent int          `json:"discount_percent"`
	FinalUnitPrice  models.Money `json:"final_unit_price"`
	Quantity        int          `json:"quantity"`
	MaxStock        int          `json:"max_stock"`
}

// UpdateQuantityRequest 数量调整请求
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// AddressRequest 地址提交/预览请求
type AddressRequest struct {
	Country       string `json:"country"`
	City          string `json:"city"`
	StreetAddress string `json:"street_address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

func (r AddressRequest) toModel() models.DeliveryAddress {
	return models.DeliveryAddress{
		Country:       r.Country,
		City:          r.City,
		StreetAddress: r.StreetAddress,
		Phone:         r.Phone,
		Email:         r.Email,
	}
}

// GetCart 加载会话购物车视图
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.LoadSession(c.Request.Context(), sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// AddCartItem 添加商品到购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid cart item payload")
		return
	}
	item := models.CartLineItem{
		ID:              req.ID,
		Name:            req.Name,
		Brand:           req.Brand,
		Image:           req.Image,
		UnitPrice:       req.UnitPrice,
		DiscountPercent: req.DiscountPercent,
		FinalUnitPrice:  req.FinalUnitPrice,
		Quantity:        req.Quantity,
		MaxStock:        req.MaxStock,
	}
	view, err := h.CartService.AddItem(c.Request.Context(), sessionID, item)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// RemoveCartItem 删除购物车行项（幂等）
func (h *Handler) RemoveCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.RemoveItem(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// UpdateCartItemQuantity 调整行项数量
func (h *Handler) UpdateCartItemQuantity(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid quantity payload")
		return
	}
	view, err := h.CartService.UpdateQuantity(c.Request.Context(), sessionID, c.Param("id"), req.Delta)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// MoveCartItemToWishlist 将行项移入收藏
func (h *Handler) MoveCartItemToWishlist(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.MoveToWishlist(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// GetWishlist 读取收藏列表
func (h *Handler) GetWishlist(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	wishlist, err := h.CartService.Wishlist(c.Request.Context(), sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, wishlist)
}

// SubmitAddress 提交收货地址
func (h *Handler) SubmitAddress(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid address payload")
		return
	}
	view, err := h.CartService.SubmitAddress(c.Request.Context(), sessionID, req.toModel())
	if err != nil {
		respondAddressError(c, err)
		return
	}
	response.Success(c, view)
}

// PreviewAddress 地址草稿配送费预览（不持久化）
func (h *Handler) PreviewAddress(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid address payload")
		return
	}
	computation, err := h.CartService.PreviewAddress(c.Request.Context(), sessionID, req.toModel())
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, computation)
}

// Checkout 结算交接
func (h *Handler) Checkout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	payload, err := h.CartService.Checkout(c.Request.Context(), sessionID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, payload)
}
