package services_test

import (
	"marche/internal/models"
	"marche/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(filter repositories.ProductFilter) ([]models.Product, repositories.Pagination, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Product), args.Get(1).(repositories.Pagination), args.Error(2)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) Newest(status string, limit int) ([]models.Product, error) {
	args := m.Called(status, limit)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) LowestStock(status string, limit int) ([]models.Product, error) {
	args := m.Called(status, limit)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Similar(categoryID, excludeID string, limit int) ([]models.Product, error) {
	args := m.Called(categoryID, excludeID, limit)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) ListBySeller(sellerID string, page, perPage int) ([]models.Product, repositories.Pagination, error) {
	args := m.Called(sellerID, page, perPage)
	return args.Get(0).([]models.Product), args.Get(1).(repositories.Pagination), args.Error(2)
}

func (m *MockProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountOutOfStock() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockDiscountRepository is a mock implementation of repositories.DiscountRepository.
type MockDiscountRepository struct {
	mock.Mock
}

func (m *MockDiscountRepository) GetApprovedByProduct(productID string) (*models.ApprovedDiscount, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ApprovedDiscount), args.Error(1)
}

func (m *MockDiscountRepository) GetApprovedByProducts(productIDs []string) (map[string]models.ApprovedDiscount, error) {
	args := m.Called(productIDs)
	return args.Get(0).(map[string]models.ApprovedDiscount), args.Error(1)
}

func (m *MockDiscountRepository) UpsertApproved(discount *models.ApprovedDiscount) error {
	args := m.Called(discount)
	return args.Error(0)
}

func (m *MockDiscountRepository) ApplyPriceBreak(discount *models.ApprovedDiscount, price decimal.Decimal) error {
	args := m.Called(discount, price)
	return args.Error(0)
}

func (m *MockDiscountRepository) DeleteApproved(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockDiscountRepository) ListApproved(page, perPage int) ([]models.ApprovedDiscount, repositories.Pagination, error) {
	args := m.Called(page, perPage)
	return args.Get(0).([]models.ApprovedDiscount), args.Get(1).(repositories.Pagination), args.Error(2)
}

func (m *MockDiscountRepository) CountApproved() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDiscountRepository) CreateProposal(proposal *models.ProposedDiscount) error {
	args := m.Called(proposal)
	return args.Error(0)
}

func (m *MockDiscountRepository) ListProposalsBySeller(sellerID string) ([]models.ProposedDiscount, error) {
	args := m.Called(sellerID)
	return args.Get(0).([]models.ProposedDiscount), args.Error(1)
}

// MockCartRepository is a mock implementation of repositories.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetOrCreateByShopper(shopperID string) (*models.Cart, error) {
	args := m.Called(shopperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) GetByShopper(shopperID string) (*models.Cart, error) {
	args := m.Called(shopperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) AddOrIncrementItem(cartID, productID string, quantity int) (*models.CartItem, error) {
	args := m.Called(cartID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) GetItemForShopper(itemID, shopperID string) (*models.CartItem, error) {
	args := m.Called(itemID, shopperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) UpdateItemQuantity(itemID string, quantity int) error {
	args := m.Called(itemID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(itemID string) error {
	args := m.Called(itemID)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateFromCart(order *models.Order, decrements []repositories.StockDecrement, deliveries []models.Delivery, cartID string) error {
	args := m.Called(order, decrements, deliveries, cartID)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByShopper(shopperID string, limit int) ([]models.Order, error) {
	args := m.Called(shopperID, limit)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) List(page, perPage int) ([]models.Order, repositories.Pagination, error) {
	args := m.Called(page, perPage)
	return args.Get(0).([]models.Order), args.Get(1).(repositories.Pagination), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Revenue() (decimal.Decimal, error) {
	args := m.Called()
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockDeliveryRepository is a mock implementation of repositories.DeliveryRepository.
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) GetForSeller(id, sellerID string) (*models.Delivery, error) {
	args := m.Called(id, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) ListBySeller(sellerID string) ([]models.Delivery, error) {
	args := m.Called(sellerID)
	return args.Get(0).([]models.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Update(delivery *models.Delivery) error {
	args := m.Called(delivery)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(role string, page, perPage int) ([]models.User, repositories.Pagination, error) {
	args := m.Called(role, page, perPage)
	return args.Get(0).([]models.User), args.Get(1).(repositories.Pagination), args.Error(2)
}

func (m *MockUserRepository) SetActive(id string, active bool) error {
	args := m.Called(id, active)
	return args.Error(0)
}

// MockReviewRepository is a mock implementation of repositories.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) ListBySeller(sellerID string) ([]models.Review, error) {
	args := m.Called(sellerID)
	return args.Get(0).([]models.Review), args.Error(1)
}
