package models

import "time"

// OrderItem is a snapshot of a cart line at checkout time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is created atomically by the upstream checkout call and immutable
// from this side afterwards.
type Order struct {
	ID        string      `json:"_id"`
	Items     []OrderItem `json:"items"`
	OrderedAt time.Time   `json:"orderedAt"`
}

// ProductSalesStat is one row of the admin sales report.
type ProductSalesStat struct {
	ProductName   string  `json:"productName"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
