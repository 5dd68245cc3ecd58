package services

import (
	"marche/internal/models"
	"marche/internal/repositories"

	"github.com/shopspring/decimal"
)

// DashboardStats are the admin dashboard counters.
type DashboardStats struct {
	TotalProducts    int64           `json:"total_products"`
	TotalOrders      int64           `json:"total_orders"`
	ActivePromotions int64           `json:"active_promotions"`
	OutOfStock       int64           `json:"out_of_stock"`
	Revenue          decimal.Decimal `json:"revenue"`
}

// AdminService handles the admin dashboard and user management.
type AdminService struct {
	productRepo  repositories.ProductRepository
	orderRepo    repositories.OrderRepository
	discountRepo repositories.DiscountRepository
	userRepo     repositories.UserRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
	discountRepo repositories.DiscountRepository,
	userRepo repositories.UserRepository,
) *AdminService {
	return &AdminService{
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		discountRepo: discountRepo,
		userRepo:     userRepo,
	}
}

// Dashboard computes the admin dashboard counters.
func (s *AdminService) Dashboard() (*DashboardStats, error) {
	totalProducts, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orderRepo.Count()
	if err != nil {
		return nil, err
	}
	promotions, err := s.discountRepo.CountApproved()
	if err != nil {
		return nil, err
	}
	outOfStock, err := s.productRepo.CountOutOfStock()
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.Revenue()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts:    totalProducts,
		TotalOrders:      totalOrders,
		ActivePromotions: promotions,
		OutOfStock:       outOfStock,
		Revenue:          revenue,
	}, nil
}

// ListUsers returns a page of users, optionally filtered by role.
func (s *AdminService) ListUsers(role string, page, perPage int) ([]models.User, repositories.Pagination, error) {
	return s.userRepo.List(role, page, perPage)
}

// SetUserActive blocks or unblocks a user account.
func (s *AdminService) SetUserActive(userID string, active bool) error {
	return s.userRepo.SetActive(userID, active)
}
