package repositories

import (
	"errors"
	"fmt"

	"marche/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// Create stores a review. A second review for the same (shopper, seller)
// pair fails with ErrDuplicate. The unique index on (shopper_id, seller_id)
// is the only duplicate check, so concurrent inserts cannot race past it.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("review by shopper %s for seller %s: %w", review.ShopperID, review.SellerID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListBySeller retrieves a seller's reviews, newest first.
func (r *GORMReviewRepository) ListBySeller(sellerID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for seller %s: %w", sellerID, err)
	}
	return reviews, nil
}
