package services

import (
	"marche/internal/models"
	"marche/internal/repositories"
)

const featuredLimit = 8

// HomePage carries the storefront home view data: newest products, a
// best-sellers approximation, and the active promotions.
type HomePage struct {
	Categories  []models.Category `json:"categories"`
	NewArrivals []PricedProduct   `json:"new_arrivals"`
	BestSellers []PricedProduct   `json:"best_sellers"`
	Promotions  []Promotion       `json:"promotions"`
}

// ProductDetail is a product page: resolved price plus similar products.
type ProductDetail struct {
	PricedProduct
	Similar []PricedProduct `json:"similar"`
}

// CatalogService handles business logic for browsing and managing the
// catalog.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	pricing      *PricingService
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, pricing *PricingService) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		pricing:      pricing,
	}
}

// Home assembles the home page sections.
func (s *CatalogService) Home() (*HomePage, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}

	newest, err := s.productRepo.Newest(models.ProductAvailable, featuredLimit)
	if err != nil {
		return nil, err
	}
	newArrivals, err := s.pricing.ResolveAll(newest)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.LowestStock(models.ProductAvailable, featuredLimit)
	if err != nil {
		return nil, err
	}
	bestSellers, err := s.pricing.ResolveAll(lowStock)
	if err != nil {
		return nil, err
	}

	promotions, _, err := s.pricing.ListPromotions(1, 6)
	if err != nil {
		return nil, err
	}

	return &HomePage{
		Categories:  categories,
		NewArrivals: newArrivals,
		BestSellers: bestSellers,
		Promotions:  promotions,
	}, nil
}

// List returns a page of available products matching the filter, with
// resolved prices.
func (s *CatalogService) List(filter repositories.ProductFilter) ([]PricedProduct, repositories.Pagination, error) {
	if filter.Status == "" {
		filter.Status = models.ProductAvailable
	}
	products, pagination, err := s.productRepo.List(filter)
	if err != nil {
		return nil, repositories.Pagination{}, err
	}
	priced, err := s.pricing.ResolveAll(products)
	if err != nil {
		return nil, repositories.Pagination{}, err
	}
	return priced, pagination, nil
}

// Get returns a product detail with its resolved price and up to four
// similar products from the same category.
func (s *CatalogService) Get(id string) (*ProductDetail, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	unitPrice, percentage, err := s.pricing.Resolve(*product)
	if err != nil {
		return nil, err
	}

	similar, err := s.productRepo.Similar(product.CategoryID, product.ID, 4)
	if err != nil {
		return nil, err
	}
	similarPriced, err := s.pricing.ResolveAll(similar)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{
		PricedProduct: PricedProduct{Product: *product, UnitPrice: unitPrice, Percentage: percentage},
		Similar:       similarPriced,
	}, nil
}

// CreateProduct adds a product to the catalog.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	if product.Status == "" {
		product.Status = models.ProductAvailable
	}
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		return err
	}
	return s.productRepo.Create(product)
}

// UpdateProduct updates an existing product. When sellerID is non-empty the
// product must belong to that seller.
func (s *CatalogService) UpdateProduct(product *models.Product, sellerID string) error {
	existing, err := s.productRepo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if sellerID != "" && existing.SellerID != sellerID {
		return ErrNotOwner
	}
	return s.productRepo.Update(product)
}

// DeleteProduct removes a product from the catalog.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.productRepo.Delete(id)
}

// ListBySeller returns a page of one seller's products.
func (s *CatalogService) ListBySeller(sellerID string, page, perPage int) ([]models.Product, repositories.Pagination, error) {
	return s.productRepo.ListBySeller(sellerID, page, perPage)
}

// Categories returns all categories.
func (s *CatalogService) Categories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// CreateCategory adds a category.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}

// DeleteCategory removes a category.
func (s *CatalogService) DeleteCategory(id string) error {
	return s.categoryRepo.Delete(id)
}
