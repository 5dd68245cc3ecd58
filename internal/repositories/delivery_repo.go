package repositories

import (
	"marche/internal/models"
)

// DeliveryRepository defines the interface for delivery data access.
type DeliveryRepository interface {
	GetForSeller(id, sellerID string) (*models.Delivery, error)
	ListBySeller(sellerID string) ([]models.Delivery, error)
	Update(delivery *models.Delivery) error
}
