package models

import "time"

// Delivery statuses.
const (
	DeliveryPending   = "pending"
	DeliveryShipped   = "shipped"
	DeliveryDelivered = "delivered"
)

// ValidDeliveryStatus reports whether s is a known delivery status.
func ValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryPending, DeliveryShipped, DeliveryDelivered:
		return true
	}
	return false
}

// Delivery tracks fulfillment of the part of an order belonging to one
// seller. Checkout creates one per distinct seller in the order.
type Delivery struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID     string     `json:"order_id" gorm:"type:varchar(36);index:idx_order_seller,unique"`
	SellerID    string     `json:"seller_id" gorm:"type:varchar(36);index:idx_order_seller,unique"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:pending"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
