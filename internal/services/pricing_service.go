package services

import (
	"errors"
	"fmt"

	"marche/internal/models"
	"marche/internal/repositories"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// PricedProduct pairs a product with its effective unit price. Percentage is
// nil when no approved discount applies.
type PricedProduct struct {
	Product    models.Product  `json:"product"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Percentage *int            `json:"percentage,omitempty"`
}

// PricingService is the single source of truth for effective prices. Every
// caller that shows or charges a price (catalog, cart, checkout) goes
// through it; nothing recomputes discounts on its own.
type PricingService struct {
	productRepo  repositories.ProductRepository
	discountRepo repositories.DiscountRepository
}

// NewPricingService creates a new PricingService.
func NewPricingService(productRepo repositories.ProductRepository, discountRepo repositories.DiscountRepository) *PricingService {
	return &PricingService{
		productRepo:  productRepo,
		discountRepo: discountRepo,
	}
}

// effectivePrice applies an integer percentage discount to a price, rounded
// to 2 decimal places: price * (100 - pct) / 100.
func effectivePrice(price decimal.Decimal, percentage int) decimal.Decimal {
	pct := decimal.NewFromInt(int64(100 - percentage))
	return price.Mul(pct).Div(oneHundred).Round(2)
}

// Resolve returns the product's effective unit price and the applied
// percentage, or the base price and nil when no discount exists.
func (s *PricingService) Resolve(product models.Product) (decimal.Decimal, *int, error) {
	discount, err := s.discountRepo.GetApprovedByProduct(product.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return product.Price.Round(2), nil, nil
		}
		return decimal.Zero, nil, fmt.Errorf("failed to resolve price for product %s: %w", product.ID, err)
	}

	pct := discount.Percentage
	return effectivePrice(product.Price, pct), &pct, nil
}

// ResolveAll prices a batch of products with a single discount lookup.
func (s *PricingService) ResolveAll(products []models.Product) ([]PricedProduct, error) {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	discounts, err := s.discountRepo.GetApprovedByProducts(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve prices: %w", err)
	}

	priced := make([]PricedProduct, len(products))
	for i, p := range products {
		priced[i] = PricedProduct{Product: p, UnitPrice: p.Price.Round(2)}
		if d, ok := discounts[p.ID]; ok {
			pct := d.Percentage
			priced[i].UnitPrice = effectivePrice(p.Price, pct)
			priced[i].Percentage = &pct
		}
	}
	return priced, nil
}

// ApplyPriceBreak applies an admin price break to a product. Exactly one of
// percentage or newPrice must be given. It records the approved discount
// (one per product, overwritten on repeat) and overwrites the product's
// stored price, so later percentage breaks compound against the already
// reduced price.
func (s *PricingService) ApplyPriceBreak(productID string, percentage *int, newPrice *decimal.Decimal) (decimal.Decimal, int, error) {
	if (percentage == nil) == (newPrice == nil) {
		return decimal.Zero, 0, ErrInvalidDiscountSpec
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return decimal.Zero, 0, err
	}

	var pct int
	var price decimal.Decimal
	switch {
	case percentage != nil:
		pct = *percentage
		if pct <= 0 || pct > 100 {
			return decimal.Zero, 0, fmt.Errorf("%w: percentage must be between 1 and 100", ErrInvalidDiscountSpec)
		}
		price = effectivePrice(product.Price, pct)
	default:
		price = newPrice.Round(2)
		if price.LessThanOrEqual(decimal.Zero) || price.GreaterThanOrEqual(product.Price) {
			return decimal.Zero, 0, fmt.Errorf("%w: new price must be positive and below the current price", ErrInvalidDiscountSpec)
		}
		// pct = round((1 - new/base) * 100)
		ratio := decimal.NewFromInt(1).Sub(price.Div(product.Price))
		pct = int(ratio.Mul(oneHundred).Round(0).IntPart())
	}

	discount := &models.ApprovedDiscount{ProductID: product.ID, Percentage: pct}
	if err := s.discountRepo.ApplyPriceBreak(discount, price); err != nil {
		return decimal.Zero, 0, err
	}
	return price, pct, nil
}

// Promotion is one discounted product as shown on the promotions page.
type Promotion struct {
	ID            string          `json:"id"`
	Product       models.Product  `json:"product"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	ReducedPrice  decimal.Decimal `json:"reduced_price"`
	Percentage    int             `json:"percentage"`
}

// ListPromotions returns a page of active promotions with resolved prices.
func (s *PricingService) ListPromotions(page, perPage int) ([]Promotion, repositories.Pagination, error) {
	discounts, pagination, err := s.discountRepo.ListApproved(page, perPage)
	if err != nil {
		return nil, repositories.Pagination{}, err
	}

	promotions := make([]Promotion, 0, len(discounts))
	for _, d := range discounts {
		if d.Product == nil {
			continue
		}
		promotions = append(promotions, Promotion{
			ID:            d.ID,
			Product:       *d.Product,
			OriginalPrice: d.Product.Price.Round(2),
			ReducedPrice:  effectivePrice(d.Product.Price, d.Percentage),
			Percentage:    d.Percentage,
		})
	}
	return promotions, pagination, nil
}

// CancelPromotion removes an approved discount.
func (s *PricingService) CancelPromotion(discountID string) error {
	return s.discountRepo.DeleteApproved(discountID)
}

// ProposeDiscount files a seller's discount proposal for one of their own
// products. There is no approval workflow; proposals stay pending until an
// admin acts outside the system.
func (s *PricingService) ProposeDiscount(sellerID, productID string, percentage int) (*models.ProposedDiscount, error) {
	if percentage <= 0 || percentage > 100 {
		return nil, fmt.Errorf("%w: percentage must be between 1 and 100", ErrInvalidDiscountSpec)
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, ErrNotOwner
	}

	proposal := &models.ProposedDiscount{
		ProductID:  productID,
		SellerID:   sellerID,
		Percentage: percentage,
		Status:     models.ProposalPending,
	}
	if err := s.discountRepo.CreateProposal(proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// ListProposals returns a seller's discount proposals.
func (s *PricingService) ListProposals(sellerID string) ([]models.ProposedDiscount, error) {
	return s.discountRepo.ListProposalsBySeller(sellerID)
}
