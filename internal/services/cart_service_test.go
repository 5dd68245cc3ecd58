package services_test

import (
	"testing"

	"marche/internal/models"
	"marche/internal/repositories"
	"marche/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newCartService(cartRepo *MockCartRepository, productRepo *MockProductRepository, discountRepo *MockDiscountRepository) *services.CartService {
	pricing := services.NewPricingService(productRepo, discountRepo)
	return services.NewCartService(cartRepo, productRepo, pricing)
}

func TestCartService_AddItem(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	mockDiscounts := new(MockDiscountRepository)
	service := newCartService(mockCarts, mockProducts, mockDiscounts)

	product := &models.Product{ID: "p1", Name: "Lamp", Price: decimal.RequireFromString("100.00")}
	cart := &models.Cart{ID: "c1", ShopperID: "u1"}

	mockProducts.On("GetByID", "p1").Return(product, nil).Once()
	mockCarts.On("GetOrCreateByShopper", "u1").Return(cart, nil).Once()
	mockCarts.On("AddOrIncrementItem", "c1", "p1", 2).Return(&models.CartItem{ID: "i1", CartID: "c1", ProductID: "p1", Quantity: 2}, nil).Once()

	item, err := service.AddItem("u1", "p1", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	mockCarts.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	mockDiscounts := new(MockDiscountRepository)
	service := newCartService(mockCarts, mockProducts, mockDiscounts)

	_, err := service.AddItem("u1", "p1", 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = service.AddItem("u1", "p1", -1)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	mockProducts.AssertNotCalled(t, "GetByID", "p1")
	mockCarts.AssertNotCalled(t, "GetOrCreateByShopper", "u1")
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	mockDiscounts := new(MockDiscountRepository)
	service := newCartService(mockCarts, mockProducts, mockDiscounts)

	mockProducts.On("GetByID", "missing").Return(nil, repositories.ErrNotFound).Once()

	_, err := service.AddItem("u1", "missing", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockCarts.AssertNotCalled(t, "GetOrCreateByShopper", "u1")
	mockProducts.AssertExpectations(t)
}

func TestCartService_SetQuantity(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	mockDiscounts := new(MockDiscountRepository)
	service := newCartService(mockCarts, mockProducts, mockDiscounts)

	item := &models.CartItem{ID: "i1", CartID: "c1", ProductID: "p1", Quantity: 2}

	// Positive quantity overwrites.
	mockCarts.On("GetItemForShopper", "i1", "u1").Return(item, nil).Once()
	mockCarts.On("UpdateItemQuantity", "i1", 5).Return(nil).Once()
	err := service.SetQuantity("u1", "i1", 5)
	assert.NoError(t, err)

	// Zero removes the line.
	mockCarts.On("GetItemForShopper", "i1", "u1").Return(item, nil).Once()
	mockCarts.On("DeleteItem", "i1").Return(nil).Once()
	err = service.SetQuantity("u1", "i1", 0)
	assert.NoError(t, err)

	// A line in someone else's cart is not found.
	mockCarts.On("GetItemForShopper", "i1", "u2").Return(nil, repositories.ErrNotFound).Once()
	err = service.SetQuantity("u2", "i1", 5)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockCarts.AssertExpectations(t)
}

func TestCartService_RemoveItem(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	mockDiscounts := new(MockDiscountRepository)
	service := newCartService(mockCarts, mockProducts, mockDiscounts)

	item := &models.CartItem{ID: "i1", CartID: "c1", ProductID: "p1", Quantity: 2}

	mockCarts.On("GetItemForShopper", "i1", "u1").Return(item, nil).Once()
	mockCarts.On("DeleteItem", "i1").Return(nil).Once()

	err := service.RemoveItem("u1", "i1")
	assert.NoError(t, err)
	mockCarts.AssertExpectations(t)
}

func TestCartService_Totals(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	mockDiscounts := new(MockDiscountRepository)
	service := newCartService(mockCarts, mockProducts, mockDiscounts)

	productA := &models.Product{ID: "p1", Name: "Lamp", Price: decimal.RequireFromString("100.00"), SellerID: "s1"}
	productB := &models.Product{ID: "p2", Name: "Desk", Price: decimal.RequireFromString("50.00"), SellerID: "s2"}
	cart := &models.Cart{
		ID:        "c1",
		ShopperID: "u1",
		Items: []models.CartItem{
			{ID: "i1", CartID: "c1", ProductID: "p1", Quantity: 2, Product: productA},
			{ID: "i2", CartID: "c1", ProductID: "p2", Quantity: 1, Product: productB},
		},
	}
	discounts := map[string]models.ApprovedDiscount{
		"p1": {ID: "d1", ProductID: "p1", Percentage: 10},
	}

	mockCarts.On("GetByShopper", "u1").Return(cart, nil).Once()
	mockDiscounts.On("GetApprovedByProducts", []string{"p1", "p2"}).Return(discounts, nil).Once()

	// 2 x 90.00 + 1 x 50.00 = 230.00
	totals, err := service.Totals("u1")
	assert.NoError(t, err)
	assert.Len(t, totals.Lines, 2)
	assert.True(t, totals.Lines[0].UnitPrice.Equal(decimal.RequireFromString("90.00")))
	assert.True(t, totals.Lines[0].LineTotal.Equal(decimal.RequireFromString("180.00")))
	assert.True(t, totals.Lines[1].LineTotal.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, totals.GrandTotal.Equal(decimal.RequireFromString("230.00")))
	mockCarts.AssertExpectations(t)
	mockDiscounts.AssertExpectations(t)
}

func TestCartService_Totals_NoCart(t *testing.T) {
	mockCarts := new(MockCartRepository)
	mockProducts := new(MockProductRepository)
	mockDiscounts := new(MockDiscountRepository)
	service := newCartService(mockCarts, mockProducts, mockDiscounts)

	mockCarts.On("GetByShopper", "u1").Return(nil, repositories.ErrNotFound).Once()

	totals, err := service.Totals("u1")
	assert.NoError(t, err)
	assert.Empty(t, totals.Lines)
	assert.True(t, totals.GrandTotal.IsZero())
	mockCarts.AssertExpectations(t)
}
