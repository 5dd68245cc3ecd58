package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. An order is immutable once created except for these
// transitions.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderDelivered  = "delivered"
	OrderCanceled   = "canceled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderDelivered, OrderCanceled:
		return true
	}
	return false
}

// Order represents a placed order. Item prices are frozen at checkout time.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ShopperID string      `json:"shopper_id" gorm:"type:varchar(36);index"`
	Status    string      `json:"status" gorm:"type:varchar(20);default:pending"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderItem is one line of an order. Price is the unit price snapshot taken
// at checkout, decoupled from any later catalog price change.
type OrderItem struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string          `json:"order_id" gorm:"type:varchar(36);index"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36);index"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Product   *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// Total sums price*quantity across the order's items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}
