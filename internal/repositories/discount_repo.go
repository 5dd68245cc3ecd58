package repositories

import (
	"marche/internal/models"

	"github.com/shopspring/decimal"
)

// DiscountRepository defines the interface for approved and proposed
// discount data access.
type DiscountRepository interface {
	// Approved discounts. At most one exists per product.
	GetApprovedByProduct(productID string) (*models.ApprovedDiscount, error)
	GetApprovedByProducts(productIDs []string) (map[string]models.ApprovedDiscount, error)
	UpsertApproved(discount *models.ApprovedDiscount) error
	ApplyPriceBreak(discount *models.ApprovedDiscount, price decimal.Decimal) error
	DeleteApproved(id string) error
	ListApproved(page, perPage int) ([]models.ApprovedDiscount, Pagination, error)
	CountApproved() (int64, error)

	// Seller proposals.
	CreateProposal(proposal *models.ProposedDiscount) error
	ListProposalsBySeller(sellerID string) ([]models.ProposedDiscount, error)
}
