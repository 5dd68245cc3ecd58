package services

import (
	"errors"
	"fmt"

	"marche/internal/models"
	"marche/internal/repositories"

	"github.com/shopspring/decimal"
)

// CartLine is one cart item with its resolved price.
type CartLine struct {
	Item       models.CartItem `json:"item"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Percentage *int            `json:"percentage,omitempty"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// CartTotals is the priced breakdown of a cart.
type CartTotals struct {
	Lines      []CartLine      `json:"lines"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// CartService handles business logic for the shopper's cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	pricing     *PricingService
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, pricing *PricingService) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		pricing:     pricing,
	}
}

// AddItem puts quantity units of a product into the shopper's cart. The cart
// is created lazily; an existing line for the product is incremented instead
// of duplicated. Stock is not checked here: availability is only enforced at
// checkout.
func (s *CartService) AddItem(shopperID, productID string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetOrCreateByShopper(shopperID)
	if err != nil {
		return nil, err
	}
	return s.cartRepo.AddOrIncrementItem(cart.ID, productID, quantity)
}

// SetQuantity overwrites a cart line's quantity; a quantity of zero or less
// removes the line. The line must belong to the shopper's cart.
func (s *CartService) SetQuantity(shopperID, itemID string, quantity int) error {
	item, err := s.cartRepo.GetItemForShopper(itemID, shopperID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return s.cartRepo.DeleteItem(item.ID)
	}
	return s.cartRepo.UpdateItemQuantity(item.ID, quantity)
}

// RemoveItem deletes a cart line owned by the shopper.
func (s *CartService) RemoveItem(shopperID, itemID string) error {
	item, err := s.cartRepo.GetItemForShopper(itemID, shopperID)
	if err != nil {
		return err
	}
	return s.cartRepo.DeleteItem(item.ID)
}

// Totals prices every cart line through the discount resolver and sums them.
// It has no side effects; a shopper with no cart yet gets empty totals.
func (s *CartService) Totals(shopperID string) (*CartTotals, error) {
	cart, err := s.cartRepo.GetByShopper(shopperID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &CartTotals{Lines: []CartLine{}, GrandTotal: decimal.Zero}, nil
		}
		return nil, err
	}

	products := make([]models.Product, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product == nil {
			return nil, fmt.Errorf("cart item %s references a missing product: %w", item.ID, repositories.ErrNotFound)
		}
		products = append(products, *item.Product)
	}

	priced, err := s.pricing.ResolveAll(products)
	if err != nil {
		return nil, err
	}

	totals := &CartTotals{Lines: make([]CartLine, len(cart.Items)), GrandTotal: decimal.Zero}
	for i, item := range cart.Items {
		lineTotal := priced[i].UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		totals.Lines[i] = CartLine{
			Item:       item,
			UnitPrice:  priced[i].UnitPrice,
			Percentage: priced[i].Percentage,
			LineTotal:  lineTotal,
		}
		totals.GrandTotal = totals.GrandTotal.Add(lineTotal)
	}
	totals.GrandTotal = totals.GrandTotal.Round(2)
	return totals, nil
}
