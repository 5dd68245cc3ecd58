package repositories

import (
	"errors"
	"fmt"
	"time"

	"marche/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GORMDiscountRepository is a GORM implementation of DiscountRepository.
type GORMDiscountRepository struct {
	db *gorm.DB
}

// NewGORMDiscountRepository creates a new instance of GORMDiscountRepository.
func NewGORMDiscountRepository(db *gorm.DB) *GORMDiscountRepository {
	return &GORMDiscountRepository{db: db}
}

// GetApprovedByProduct retrieves the effective discount for a product.
func (r *GORMDiscountRepository) GetApprovedByProduct(productID string) (*models.ApprovedDiscount, error) {
	var discount models.ApprovedDiscount
	if err := r.db.First(&discount, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("discount for product %s: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get discount for product %s: %w", productID, err)
	}
	return &discount, nil
}

// GetApprovedByProducts retrieves the effective discounts for a set of
// products in one query, keyed by product ID.
func (r *GORMDiscountRepository) GetApprovedByProducts(productIDs []string) (map[string]models.ApprovedDiscount, error) {
	if len(productIDs) == 0 {
		return map[string]models.ApprovedDiscount{}, nil
	}

	var discounts []models.ApprovedDiscount
	if err := r.db.Where("product_id IN ?", productIDs).Find(&discounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get discounts: %w", err)
	}

	byProduct := make(map[string]models.ApprovedDiscount, len(discounts))
	for _, d := range discounts {
		byProduct[d.ProductID] = d
	}
	return byProduct, nil
}

// UpsertApproved creates the discount for a product, or overwrites the
// existing one. The unique index on product_id keeps one row per product.
func (r *GORMDiscountRepository) UpsertApproved(discount *models.ApprovedDiscount) error {
	return upsertApproved(r.db, discount)
}

// ApplyPriceBreak records the approved discount and overwrites the product's
// stored price in a single transaction, so a failed price write never leaves
// a dangling discount row.
func (r *GORMDiscountRepository) ApplyPriceBreak(discount *models.ApprovedDiscount, price decimal.Decimal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := upsertApproved(tx, discount); err != nil {
			return err
		}

		res := tx.Model(&models.Product{}).Where("id = ?", discount.ProductID).Update("price", price)
		if res.Error != nil {
			return fmt.Errorf("failed to update price for product %s: %w", discount.ProductID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product %s: %w", discount.ProductID, ErrNotFound)
		}
		return nil
	})
}

func upsertApproved(db *gorm.DB, discount *models.ApprovedDiscount) error {
	var existing models.ApprovedDiscount
	err := db.First(&existing, "product_id = ?", discount.ProductID).Error
	switch {
	case err == nil:
		existing.Percentage = discount.Percentage
		existing.ValidatedAt = time.Now()
		if err := db.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update discount: %w", err)
		}
		*discount = existing
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if discount.ID == "" {
			discount.ID = uuid.New().String()
		}
		if err := db.Create(discount).Error; err != nil {
			return fmt.Errorf("failed to create discount: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to look up discount: %w", err)
	}
}

// DeleteApproved removes an approved discount (promotion cancelation).
func (r *GORMDiscountRepository) DeleteApproved(id string) error {
	res := r.db.Delete(&models.ApprovedDiscount{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete discount: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("discount %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListApproved retrieves a page of discounts with their products.
func (r *GORMDiscountRepository) ListApproved(page, perPage int) ([]models.ApprovedDiscount, Pagination, error) {
	var total int64
	if err := r.db.Model(&models.ApprovedDiscount{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count discounts: %w", err)
	}

	var discounts []models.ApprovedDiscount
	err := r.db.Preload("Product").
		Order("validated_at DESC").
		Scopes(Paginate(page, perPage)).
		Find(&discounts).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list discounts: %w", err)
	}
	return discounts, NewPagination(page, perPage, total), nil
}

// CountApproved returns the number of active promotions.
func (r *GORMDiscountRepository) CountApproved() (int64, error) {
	var total int64
	if err := r.db.Model(&models.ApprovedDiscount{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count discounts: %w", err)
	}
	return total, nil
}

// CreateProposal files a seller's discount proposal.
func (r *GORMDiscountRepository) CreateProposal(proposal *models.ProposedDiscount) error {
	if proposal.ID == "" {
		proposal.ID = uuid.New().String()
	}
	if proposal.Status == "" {
		proposal.Status = models.ProposalPending
	}
	if err := r.db.Create(proposal).Error; err != nil {
		return fmt.Errorf("failed to create discount proposal: %w", err)
	}
	return nil
}

// ListProposalsBySeller retrieves a seller's proposals, newest first.
func (r *GORMDiscountRepository) ListProposalsBySeller(sellerID string) ([]models.ProposedDiscount, error) {
	var proposals []models.ProposedDiscount
	err := r.db.Preload("Product").
		Where("seller_id = ?", sellerID).
		Order("proposed_at DESC").
		Find(&proposals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals for seller %s: %w", sellerID, err)
	}
	return proposals, nil
}
