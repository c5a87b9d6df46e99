package models

import "time"

// Product 外部商品目录服务返回的商品结构
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Price           Money    `json:"price"`
	DiscountPercent int      `json:"discount_percent"`
	FinalPrice      Money    `json:"final_price"`
	Image           string   `json:"image"`
	Images          []string `json:"images,omitempty"`
	CountInStock    int      `json:"count_in_stock"`
	Rating          float64  `json:"rating"`
	Featured        bool     `json:"featured"`
}

// OrderItem 历史订单行项（外部订单服务结构）
type OrderItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
	UnitPrice Money  `json:"unit_price"`
	ProductID string `json:"product_id"`
}

// Order 历史订单（外部订单服务结构）
type Order struct {
	ID          string      `json:"id"`
	Items       []OrderItem `json:"items"`
	TotalPrice  Money       `json:"total_price"`
	IsPaid      bool        `json:"is_paid"`
	IsDelivered bool        `json:"is_delivered"`
	CreatedAt   time.Time   `json:"created_at"`
}
