package repositories

import (
	"errors"
	"fmt"

	"marche/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// List retrieves a page of products matching the filter.
func (r *GORMProductRepository) List(filter ProductFilter) ([]models.Product, Pagination, error) {
	query := r.db.Model(&models.Product{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", filter.PriceMax)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := query.Preload("Category").Preload("Seller").
		Order("created_at DESC").
		Scopes(Paginate(filter.Page, filter.PerPage)).
		Find(&products).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list products: %w", err)
	}
	return products, NewPagination(filter.Page, filter.PerPage, total), nil
}

// GetByID retrieves a single product with its category and seller.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Preload("Seller").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound for a missing row, so we
		// check RowsAffected.
		return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return nil
}

// Newest returns the most recently added products with the given status.
func (r *GORMProductRepository) Newest(status string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("status = ?", status).
		Order("created_at DESC").Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get newest products: %w", err)
	}
	return products, nil
}

// LowestStock returns the products with the least remaining stock, used as a
// best-sellers approximation on the home page.
func (r *GORMProductRepository) LowestStock(status string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("status = ?", status).
		Order("stock ASC").Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get lowest stock products: %w", err)
	}
	return products, nil
}

// Similar returns available products sharing a category, excluding one ID.
func (r *GORMProductRepository) Similar(categoryID, excludeID string, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("category_id = ? AND status = ? AND id <> ?", categoryID, models.ProductAvailable, excludeID).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get similar products: %w", err)
	}
	return products, nil
}

// ListBySeller retrieves a page of one seller's products.
func (r *GORMProductRepository) ListBySeller(sellerID string, page, perPage int) ([]models.Product, Pagination, error) {
	query := r.db.Model(&models.Product{}).Where("seller_id = ?", sellerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count seller products: %w", err)
	}

	var products []models.Product
	err := query.Preload("Category").
		Order("created_at DESC").
		Scopes(Paginate(page, perPage)).
		Find(&products).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list seller products: %w", err)
	}
	return products, NewPagination(page, perPage, total), nil
}

// Count returns the total number of products.
func (r *GORMProductRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

// CountOutOfStock returns the number of products with zero stock.
func (r *GORMProductRepository) CountOutOfStock() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Product{}).Where("stock = 0").Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count out-of-stock products: %w", err)
	}
	return total, nil
}
