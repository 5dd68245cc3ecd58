package repositories

import (
	"errors"
	"fmt"

	"marche/internal/models"

	"gorm.io/gorm"
)

// GORMDeliveryRepository is a GORM implementation of DeliveryRepository.
type GORMDeliveryRepository struct {
	db *gorm.DB
}

// NewGORMDeliveryRepository creates a new instance of GORMDeliveryRepository.
func NewGORMDeliveryRepository(db *gorm.DB) *GORMDeliveryRepository {
	return &GORMDeliveryRepository{db: db}
}

// GetForSeller returns a delivery only if it belongs to the seller.
func (r *GORMDeliveryRepository) GetForSeller(id, sellerID string) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.db.First(&delivery, "id = ? AND seller_id = ?", id, sellerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("delivery %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get delivery %s: %w", id, err)
	}
	return &delivery, nil
}

// ListBySeller retrieves a seller's deliveries, newest first.
func (r *GORMDeliveryRepository) ListBySeller(sellerID string) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	err := r.db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&deliveries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries for seller %s: %w", sellerID, err)
	}
	return deliveries, nil
}

// Update saves delivery status changes.
func (r *GORMDeliveryRepository) Update(delivery *models.Delivery) error {
	res := r.db.Save(delivery)
	if res.Error != nil {
		return fmt.Errorf("failed to update delivery %s: %w", delivery.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delivery %s: %w", delivery.ID, ErrNotFound)
	}
	return nil
}
