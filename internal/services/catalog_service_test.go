package services_test

import (
	"testing"

	"marche/internal/models"
	"marche/internal/repositories"
	"marche/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCatalogService(productRepo *MockProductRepository, categoryRepo *MockCategoryRepository, discountRepo *MockDiscountRepository) *services.CatalogService {
	pricing := services.NewPricingService(productRepo, discountRepo)
	return services.NewCatalogService(productRepo, categoryRepo, pricing)
}

func TestCatalogService_List_DefaultsToAvailable(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockDiscounts := new(MockDiscountRepository)
	service := newCatalogService(mockProducts, mockCategories, mockDiscounts)

	products := []models.Product{
		{ID: "p1", Name: "Lamp", Price: decimal.RequireFromString("100.00")},
	}
	pagination := repositories.NewPagination(1, 12, 1)

	mockProducts.On("List", mock.MatchedBy(func(f repositories.ProductFilter) bool {
		return f.Status == models.ProductAvailable
	})).Return(products, pagination, nil).Once()
	mockDiscounts.On("GetApprovedByProducts", []string{"p1"}).
		Return(map[string]models.ApprovedDiscount{"p1": {ID: "d1", ProductID: "p1", Percentage: 10}}, nil).Once()

	priced, page, err := service.List(repositories.ProductFilter{})
	assert.NoError(t, err)
	assert.Len(t, priced, 1)
	assert.True(t, priced[0].UnitPrice.Equal(decimal.RequireFromString("90.00")))
	assert.Equal(t, int64(1), page.Total)
	mockProducts.AssertExpectations(t)
	mockDiscounts.AssertExpectations(t)
}

func TestCatalogService_Get(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockDiscounts := new(MockDiscountRepository)
	service := newCatalogService(mockProducts, mockCategories, mockDiscounts)

	product := &models.Product{ID: "p1", Name: "Lamp", Price: decimal.RequireFromString("100.00"), CategoryID: "cat1"}
	similar := []models.Product{
		{ID: "p2", Name: "Desk lamp", Price: decimal.RequireFromString("40.00"), CategoryID: "cat1"},
	}

	mockProducts.On("GetByID", "p1").Return(product, nil).Once()
	mockDiscounts.On("GetApprovedByProduct", "p1").Return(nil, repositories.ErrNotFound).Once()
	mockProducts.On("Similar", "cat1", "p1", 4).Return(similar, nil).Once()
	mockDiscounts.On("GetApprovedByProducts", []string{"p2"}).Return(map[string]models.ApprovedDiscount{}, nil).Once()

	detail, err := service.Get("p1")
	assert.NoError(t, err)
	assert.Equal(t, "p1", detail.Product.ID)
	assert.True(t, detail.UnitPrice.Equal(decimal.RequireFromString("100.00")))
	assert.Nil(t, detail.Percentage)
	assert.Len(t, detail.Similar, 1)
	mockProducts.AssertExpectations(t)
	mockDiscounts.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_UnknownCategory(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockDiscounts := new(MockDiscountRepository)
	service := newCatalogService(mockProducts, mockCategories, mockDiscounts)

	mockCategories.On("GetByID", "missing").Return(nil, repositories.ErrNotFound).Once()

	err := service.CreateProduct(&models.Product{Name: "Lamp", Price: decimal.RequireFromString("100.00"), CategoryID: "missing"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockProducts.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCatalogService_UpdateProduct_Ownership(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockDiscounts := new(MockDiscountRepository)
	service := newCatalogService(mockProducts, mockCategories, mockDiscounts)

	existing := &models.Product{ID: "p1", Name: "Lamp", Price: decimal.RequireFromString("100.00"), SellerID: "s1"}
	update := &models.Product{ID: "p1", Name: "Lamp v2", Price: decimal.RequireFromString("110.00"), SellerID: "s1"}

	// Owning seller may update.
	mockProducts.On("GetByID", "p1").Return(existing, nil).Times(3)
	mockProducts.On("Update", update).Return(nil).Twice()
	err := service.UpdateProduct(update, "s1")
	assert.NoError(t, err)

	// Another seller may not.
	err = service.UpdateProduct(update, "s2")
	assert.ErrorIs(t, err, services.ErrNotOwner)

	// An empty seller ID means an admin is editing.
	err = service.UpdateProduct(update, "")
	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
}
