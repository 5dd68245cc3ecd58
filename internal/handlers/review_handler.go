package handlers

import (
	"log"

	"marche/internal/middleware"
	"marche/internal/models"
	"marche/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles shopper reviews of sellers.
type ReviewHandler struct {
	reviewService *services.ReviewService
	validate      *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

// RegisterPublicRoutes registers the unauthenticated review listing. It must
// run before the auth middleware is mounted so anonymous reads stay open.
func (h *ReviewHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/sellers/:id/reviews", h.HandleListReviews)
}

// RegisterRoutes registers review creation. The router must already be
// guarded by AuthRequired; the shopper role is enforced here.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/sellers/:id/reviews", middleware.RequireRole(models.RoleShopper), h.HandleCreateReview)
}

// CreateReviewRequest represents the request body for a review.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

// HandleCreateReview stores a shopper's review of a seller. A second review
// of the same seller is rejected.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationErrors(err))
	}

	review := models.Review{
		ShopperID: middleware.UserID(c),
		SellerID:  c.Params("id"),
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := h.reviewService.Create(&review); err != nil {
		log.Printf("Error creating review: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"review":  review,
	})
}

// HandleListReviews returns a seller's reviews.
func (h *ReviewHandler) HandleListReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.ListForSeller(c.Params("id"))
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"reviews": reviews,
	})
}
