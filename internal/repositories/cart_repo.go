package repositories

import (
	"marche/internal/models"
)

// CartRepository defines the interface for cart data access. Item lookups
// are scoped to a shopper so one shopper can never touch another's lines.
type CartRepository interface {
	GetOrCreateByShopper(shopperID string) (*models.Cart, error)
	GetByShopper(shopperID string) (*models.Cart, error)
	AddOrIncrementItem(cartID, productID string, quantity int) (*models.CartItem, error)
	GetItemForShopper(itemID, shopperID string) (*models.CartItem, error)
	UpdateItemQuantity(itemID string, quantity int) error
	DeleteItem(itemID string) error
}
