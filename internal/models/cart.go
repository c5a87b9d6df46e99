package models

// CartLineItem 购物车行项
type CartLineItem struct {
	ID              string `json:"id"`                // 商品标识，购物车内唯一
	Name            string `json:"name"`              // 商品名称
	Brand           string `json:"brand"`             // 品牌
	Image           string `json:"image"`             // 图片地址
	UnitPrice       Money  `json:"unit_price"`        // 原价
	DiscountPercent int    `json:"discount_percent"`  // 折扣百分比 0-100
	FinalUnitPrice  Money  `json:"final_unit_price"`  // 折后单价（上游计算，直接信任）
	Quantity        int    `json:"quantity"`          // 数量，始终满足 1 <= quantity <= max_stock
	MaxStock        int    `json:"max_stock"`         // 库存上限
}

// LineTotal 行小计 = 折后单价 × 数量
func (i CartLineItem) LineTotal() Money {
	return i.FinalUnitPrice.MulInt(i.Quantity)
}

// ClampQuantity 将数量收敛到 [1, MaxStock]
func (i *CartLineItem) ClampQuantity() {
	if i.MaxStock < 1 {
		i.MaxStock = 1
	}
	if i.Quantity < 1 {
		i.Quantity = 1
	}
	if i.Quantity > i.MaxStock {
		i.Quantity = i.MaxStock
	}
}

// Cart 购物车（按 id 去重的行项集合，顺序无业务含义）
type Cart []CartLineItem

// Subtotal 购物车小计
func (c Cart) Subtotal() Money {
	total := MoneyZero()
	for _, item := range c {
		total = total.Add(item.LineTotal())
	}
	return total
}

// IndexOf 返回 id 对应行项下标，不存在返回 -1
func (c Cart) IndexOf(id string) int {
	for i, item := range c {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// WishlistItem 收藏项（购物车行项的裁剪投影）
type WishlistItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Brand           string `json:"brand"`
	Image           string `json:"image"`
	UnitPrice       Money  `json:"unit_price"`
	FinalUnitPrice  Money  `json:"final_unit_price"`
	DiscountPercent int    `json:"discount_percent"`
}

// WishlistItemFromCart 从购物车行项生成收藏项
func WishlistItemFromCart(item CartLineItem) WishlistItem {
	return WishlistItem{
		ID:              item.ID,
		Name:            item.Name,
		Brand:           item.Brand,
		Image:           item.Image,
		UnitPrice:       item.UnitPrice,
		FinalUnitPrice:  item.FinalUnitPrice,
		DiscountPercent: item.DiscountPercent,
	}
}

// Wishlist 收藏列表
type Wishlist []WishlistItem

// Contains 判断收藏列表里是否已有该 id
func (w Wishlist) Contains(id string) bool {
	for _, item := range w {
		if item.ID == id {
			return true
		}
	}
	return false
}
