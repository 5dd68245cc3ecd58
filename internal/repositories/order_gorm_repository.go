package repositories

import (
	"errors"
	"fmt"

	"marche/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// CreateFromCart persists the whole checkout in one transaction.
func (r *GORMOrderRepository) CreateFromCart(order *models.Order, decrements []StockDecrement, deliveries []models.Delivery, cartID string) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	for i := range deliveries {
		if deliveries[i].ID == "" {
			deliveries[i].ID = uuid.New().String()
		}
		deliveries[i].OrderID = order.ID
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, dec := range decrements {
			// Conditional decrement: only succeeds while enough stock
			// remains, so stock can never go negative and concurrent
			// checkouts cannot both take the last unit.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", dec.ProductID, dec.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", dec.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock for product %s: %w", dec.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("product %s: %w", dec.ProductID, ErrInsufficientStock)
			}
		}

		if len(deliveries) > 0 {
			if err := tx.Create(&deliveries).Error; err != nil {
				return fmt.Errorf("failed to create deliveries: %w", err)
			}
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to empty cart %s: %w", cartID, err)
		}
		return nil
	})
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Items.Product").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// ListByShopper retrieves a shopper's most recent orders.
func (r *GORMOrderRepository) ListByShopper(shopperID string, limit int) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Preload("Items").Preload("Items.Product").
		Where("shopper_id = ?", shopperID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders for shopper %s: %w", shopperID, err)
	}
	return orders, nil
}

// List retrieves a page of all orders, newest first.
func (r *GORMOrderRepository) List(page, perPage int) ([]models.Order, Pagination, error) {
	var total int64
	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []models.Order
	err := r.db.Preload("Items").
		Order("created_at DESC").
		Scopes(Paginate(page, perPage)).
		Find(&orders).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, NewPagination(page, perPage, total), nil
}

// UpdateStatus sets an order's status. Status values are validated by the
// service layer.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the total number of orders.
func (r *GORMOrderRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

// Revenue sums price*quantity over all order items.
func (r *GORMOrderRepository) Revenue() (decimal.Decimal, error) {
	var items []models.OrderItem
	if err := r.db.Find(&items).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to load order items: %w", err)
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2), nil
}
