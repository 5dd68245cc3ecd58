package services

import (
	"fmt"

	"marche/internal/models"
	"marche/internal/repositories"
)

// ReviewService handles shopper reviews of sellers.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, userRepo repositories.UserRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

// Create stores a shopper's review of a seller. The target must be a seller
// account, and each shopper can review a seller at most once.
func (s *ReviewService) Create(review *models.Review) error {
	target, err := s.userRepo.GetByID(review.SellerID)
	if err != nil {
		return err
	}
	if target.Role != models.RoleSeller {
		return fmt.Errorf("user %s is not a seller: %w", review.SellerID, repositories.ErrNotFound)
	}
	return s.reviewRepo.Create(review)
}

// ListForSeller returns a seller's reviews.
func (s *ReviewService) ListForSeller(sellerID string) ([]models.Review, error) {
	return s.reviewRepo.ListBySeller(sellerID)
}
