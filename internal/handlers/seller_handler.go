package handlers

import (
	"log"

	"marche/internal/middleware"
	"marche/internal/models"
	"marche/internal/repositories"
	"marche/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// SellerHandler handles the seller surface: their products, discount
// proposals, and deliveries.
type SellerHandler struct {
	catalog         *services.CatalogService
	pricing         *services.PricingService
	checkoutService *services.CheckoutService
	validate        *validator.Validate
}

// NewSellerHandler creates a new SellerHandler.
func NewSellerHandler(catalog *services.CatalogService, pricing *services.PricingService, checkoutService *services.CheckoutService) *SellerHandler {
	return &SellerHandler{
		catalog:         catalog,
		pricing:         pricing,
		checkoutService: checkoutService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the seller routes. The router must already be
// guarded by AuthRequired; the seller role is enforced here.
func (h *SellerHandler) RegisterRoutes(router fiber.Router) {
	sellerRoutes := router.Group("/seller", middleware.RequireRole(models.RoleSeller))
	sellerRoutes.Get("/products", h.HandleListProducts)
	sellerRoutes.Post("/products", h.HandleCreateProduct)
	sellerRoutes.Put("/products/:id", h.HandleUpdateProduct)
	sellerRoutes.Post("/discounts", h.HandleProposeDiscount)
	sellerRoutes.Get("/discounts", h.HandleListProposals)
	sellerRoutes.Get("/deliveries", h.HandleListDeliveries)
	sellerRoutes.Put("/deliveries/:id/status", h.HandleUpdateDeliveryStatus)
}

// HandleListProducts returns a page of the seller's own products.
func (h *SellerHandler) HandleListProducts(c *fiber.Ctx) error {
	products, pagination, err := h.catalog.ListBySeller(middleware.UserID(c), c.QueryInt("page", 1), c.QueryInt("per_page", repositories.DefaultPageSize))
	if err != nil {
		log.Printf("Error listing seller products: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"products":   products,
		"pagination": pagination,
	})
}

// ProductRequest represents the request body for creating or updating a
// product.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,min=3,max=200"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
	Status      string          `json:"status" validate:"omitempty,oneof=available unavailable out_of_stock"`
}

// HandleCreateProduct lists a new product owned by the seller.
func (h *SellerHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationErrors(err))
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return badRequest(c, map[string]string{"price": "Price must be greater than 0"})
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		SellerID:    middleware.UserID(c),
		Status:      req.Status,
	}
	if err := h.catalog.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleUpdateProduct updates one of the seller's own products.
func (h *SellerHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationErrors(err))
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return badRequest(c, map[string]string{"price": "Price must be greater than 0"})
	}

	product := models.Product{
		ID:          c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		SellerID:    middleware.UserID(c),
		Status:      req.Status,
	}
	if err := h.catalog.UpdateProduct(&product, middleware.UserID(c)); err != nil {
		log.Printf("Error updating product: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// ProposeDiscountRequest represents the request body for a discount
// proposal.
type ProposeDiscountRequest struct {
	ProductID  string `json:"product_id" validate:"required,uuid"`
	Percentage int    `json:"percentage" validate:"required,gt=0,lte=100"`
}

// HandleProposeDiscount files a discount proposal for one of the seller's
// products.
func (h *SellerHandler) HandleProposeDiscount(c *fiber.Ctx) error {
	var req ProposeDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationErrors(err))
	}

	proposal, err := h.pricing.ProposeDiscount(middleware.UserID(c), req.ProductID, req.Percentage)
	if err != nil {
		log.Printf("Error proposing discount: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"proposal": proposal,
	})
}

// HandleListProposals returns the seller's discount proposals.
func (h *SellerHandler) HandleListProposals(c *fiber.Ctx) error {
	proposals, err := h.pricing.ListProposals(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing proposals: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"proposals": proposals,
	})
}

// HandleListDeliveries returns the seller's deliveries.
func (h *SellerHandler) HandleListDeliveries(c *fiber.Ctx) error {
	deliveries, err := h.checkoutService.ListDeliveries(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing deliveries: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"deliveries": deliveries,
	})
}

// StatusRequest represents a bare status change request body.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateDeliveryStatus transitions one of the seller's deliveries.
func (h *SellerHandler) HandleUpdateDeliveryStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationErrors(err))
	}

	delivery, err := h.checkoutService.UpdateDeliveryStatus(middleware.UserID(c), c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"delivery": delivery,
	})
}
