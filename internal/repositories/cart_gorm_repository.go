package repositories

import (
	"errors"
	"fmt"

	"marche/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// GetOrCreateByShopper returns the shopper's cart, creating it on first use.
func (r *GORMCartRepository) GetOrCreateByShopper(shopperID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.First(&cart, "shopper_id = ?", shopperID).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get cart for shopper %s: %w", shopperID, err)
	}

	cart = models.Cart{ID: uuid.New().String(), ShopperID: shopperID}
	if err := r.db.Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart for shopper %s: %w", shopperID, err)
	}
	return &cart, nil
}

// GetByShopper returns the shopper's cart with its items and products.
func (r *GORMCartRepository) GetByShopper(shopperID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").Preload("Items.Product").
		First(&cart, "shopper_id = ?", shopperID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart for shopper %s: %w", shopperID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart for shopper %s: %w", shopperID, err)
	}
	return &cart, nil
}

// AddOrIncrementItem adds a product line to the cart, or increments the
// quantity of the existing line for the same product.
func (r *GORMCartRepository) AddOrIncrementItem(cartID, productID string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, "cart_id = ? AND product_id = ?", cartID, productID).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := r.db.Save(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to increment cart item: %w", err)
		}
		return &item, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			ID:        uuid.New().String(),
			CartID:    cartID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := r.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to create cart item: %w", err)
		}
		return &item, nil
	default:
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}
}

// GetItemForShopper returns a cart line only if it belongs to the shopper's
// cart.
func (r *GORMCartRepository) GetItemForShopper(itemID, shopperID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.shopper_id = ?", itemID, shopperID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item %s: %w", itemID, err)
	}
	return &item, nil
}

// UpdateItemQuantity overwrites a cart line's quantity.
func (r *GORMCartRepository) UpdateItemQuantity(itemID string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	return nil
}

// DeleteItem removes a cart line.
func (r *GORMCartRepository) DeleteItem(itemID string) error {
	res := r.db.Delete(&models.CartItem{}, "id = ?", itemID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	return nil
}
