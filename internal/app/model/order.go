package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the recognized statuses. The
// storage engine itself never checks this; the HTTP boundary does.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a placed order. Total and ShippingAddress are immutable after
// creation; only Status may change. UserID is nil for guest checkouts.
type Order struct {
	ID              uint        `json:"id"`
	UserID          *uint       `json:"userId"`
	Status          OrderStatus `json:"status"`
	Total           string      `json:"total"`
	ShippingAddress string      `json:"shippingAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// NewOrder carries the fields for order creation. Status defaults to
// pending when empty; CreatedAt is stamped by the storage engine.
type NewOrder struct {
	UserID          *uint
	Status          OrderStatus
	Total           string
	ShippingAddress string
}

// OrderItem is one line of an order. Price is the product price snapshot
// captured at purchase time, so later catalog price changes never affect
// historical orders.
type OrderItem struct {
	ID        uint   `json:"id"`
	OrderID   uint   `json:"orderId"`
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type NewOrderItem struct {
	OrderID   uint
	ProductID uint
	Quantity  int
	Price     string
}

// OrderItemDetail is an order item enriched with its product for API
// responses. Product is nil when the reference dangles.
type OrderItemDetail struct {
	OrderItem
	Product *Product `json:"product,omitempty"`
}

// OrderDetail is an order enriched with its items and, when present, the
// ordering user.
type OrderDetail struct {
	Order
	Items []OrderItemDetail `json:"items"`
	User  *User             `json:"user,omitempty"`
}
