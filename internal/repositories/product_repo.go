package repositories

import (
	"marche/internal/models"

	"github.com/shopspring/decimal"
)

// ProductFilter holds the optional catalog listing filters.
type ProductFilter struct {
	CategoryID string
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Search     string
	Status     string
	Page       int
	PerPage    int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, Pagination, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	Newest(status string, limit int) ([]models.Product, error)
	LowestStock(status string, limit int) ([]models.Product, error)
	Similar(categoryID, excludeID string, limit int) ([]models.Product, error)
	ListBySeller(sellerID string, page, perPage int) ([]models.Product, Pagination, error)
	Count() (int64, error)
	CountOutOfStock() (int64, error)
}
