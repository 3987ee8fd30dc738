package domain

import "time"

type Sale struct {
	ID          string    `json:"_id"`
	Product     string    `json:"product"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	TotalPrice  float64   `json:"totalPrice"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SaleInput struct {
	Product     string  `json:"product,omitempty"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity,omitempty"`
	Price       float64 `json:"price,omitempty"`
	TotalPrice  float64 `json:"totalPrice,omitempty"`
}

// SalesStats mirrors the aggregate payload of GET /sales/stats.
type SalesStats struct {
	TotalSales   int     `json:"totalSales"`
	TotalRevenue float64 `json:"totalRevenue"`
}
