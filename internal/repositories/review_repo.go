package repositories

import (
	"marche/internal/models"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	ListBySeller(sellerID string) ([]models.Review, error)
}
