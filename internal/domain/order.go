package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Known() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a denormalized line item: product name and price are copied
// from the product at order-creation time and never reconciled afterwards.
type OrderItem struct {
	Product     string  `json:"product"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type Order struct {
	ID           string      `json:"_id"`
	CustomerName string      `json:"customerName"`
	MobileNum    string      `json:"mobileNum"`
	Address      string      `json:"address"`
	Email        string      `json:"customerEmail,omitempty"`
	Items        []OrderItem `json:"items"`
	TotalPrice   float64     `json:"totalPrice"`
	Status       OrderStatus `json:"status"`
	Notes        string      `json:"notes,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// OrderInput is the payload for creating or updating an order. Zero-valued
// fields are omitted on the wire, so the same type serves partial updates
// such as a status-only change.
type OrderInput struct {
	CustomerName string      `json:"customerName,omitempty"`
	MobileNum    string      `json:"mobileNum,omitempty"`
	Address      string      `json:"address,omitempty"`
	Email        string      `json:"customerEmail,omitempty"`
	Items        []OrderItem `json:"items,omitempty"`
	TotalPrice   float64     `json:"totalPrice,omitempty"`
	Status       OrderStatus `json:"status,omitempty"`
	Notes        string      `json:"notes,omitempty"`
}

// Total sums quantity*price over the line items.
func (in OrderInput) Total() float64 {
	var sum float64
	for _, it := range in.Items {
		sum += float64(it.Quantity) * it.Price
	}
	return sum
}
