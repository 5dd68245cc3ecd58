package repositories

import (
	"marche/internal/models"

	"github.com/shopspring/decimal"
)

// StockDecrement describes one product's stock reduction during checkout.
type StockDecrement struct {
	ProductID string
	Quantity  int
}

// OrderRepository defines the interface for order data access.
//
// CreateFromCart is the single atomic checkout write: it creates the order
// with its items, applies the conditional stock decrements, creates the
// deliveries, and empties the cart, all in one transaction. Any failure
// rolls the whole write back; a decrement that would drive stock negative
// fails with ErrInsufficientStock.
type OrderRepository interface {
	CreateFromCart(order *models.Order, decrements []StockDecrement, deliveries []models.Delivery, cartID string) error
	GetByID(id string) (*models.Order, error)
	ListByShopper(shopperID string, limit int) ([]models.Order, error)
	List(page, perPage int) ([]models.Order, Pagination, error)
	UpdateStatus(id string, status string) error
	Count() (int64, error)
	Revenue() (decimal.Decimal, error)
}
