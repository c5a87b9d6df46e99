package models

import "time"

// CheckoutPayload 结算快照：购物车、地址与计算结果的打包，交给外部结算流程
type CheckoutPayload struct {
	ID              string              `json:"id"`
	Cart            Cart                `json:"cart"`
	DeliveryAddress DeliveryAddress     `json:"delivery_address"`
	Subtotal        Money               `json:"subtotal"`
	Shipping        Money               `json:"shipping"`
	Tax             Money               `json:"tax"`
	Total           Money               `json:"total"`
	DeliveryInfo    DeliveryComputation `json:"delivery_info"`
	CreatedAt       time.Time           `json:"created_at"`
}
