package models

// DeliveryComputation 配送费/税费计算结果
// 纯派生数据：购物车小计或地址任一变化时必须整体重算，禁止增量修补。
type DeliveryComputation struct {
	FreeDelivery   bool   `json:"free_delivery"`
	ChargeStatus   string `json:"charge_status"` // pending / free / charged
	DeliveryCharge Money  `json:"delivery_charge"`
	TaxApplicable  bool   `json:"tax_applicable"`
	TaxAmount      Money  `json:"tax_amount"`
	Message        string `json:"message"`
	TaxMessage     string `json:"tax_message,omitempty"`
}

// OrderSummary 订单金额汇总
type OrderSummary struct {
	Subtotal       Money `json:"subtotal"`
	DeliveryCharge Money `json:"delivery_charge"`
	TaxAmount      Money `json:"tax_amount"`
	Total          Money `json:"total"`
}
