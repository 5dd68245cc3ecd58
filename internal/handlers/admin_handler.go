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

// AdminHandler handles the admin panel: dashboard, catalog management,
// price breaks, promotions, orders, and users.
type AdminHandler struct {
	adminService    *services.AdminService
	catalog         *services.CatalogService
	pricing         *services.PricingService
	checkoutService *services.CheckoutService
	validate        *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	adminService *services.AdminService,
	catalog *services.CatalogService,
	pricing *services.PricingService,
	checkoutService *services.CheckoutService,
) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		catalog:         catalog,
		pricing:         pricing,
		checkoutService: checkoutService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the admin routes. The router must already be
// guarded by AuthRequired; the admin role is enforced here.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	adminRoutes.Get("/dashboard", h.HandleDashboard)

	adminRoutes.Get("/products", h.HandleListProducts)
	adminRoutes.Post("/products", h.HandleCreateProduct)
	adminRoutes.Put("/products/:id", h.HandleUpdateProduct)
	adminRoutes.Delete("/products/:id", h.HandleDeleteProduct)
	adminRoutes.Post("/products/:id/price-break", h.HandlePriceBreak)

	adminRoutes.Get("/promotions", h.HandleListPromotions)
	adminRoutes.Delete("/promotions/:id", h.HandleCancelPromotion)

	adminRoutes.Get("/orders", h.HandleListOrders)
	adminRoutes.Put("/orders/:id/status", h.HandleUpdateOrderStatus)

	adminRoutes.Get("/users", h.HandleListUsers)
	adminRoutes.Put("/users/:id/active", h.HandleSetUserActive)

	adminRoutes.Get("/categories", h.HandleListCategories)
	adminRoutes.Post("/categories", h.HandleCreateCategory)
	adminRoutes.Delete("/categories/:id", h.HandleDeleteCategory)
}

// HandleDashboard returns the dashboard counters.
func (h *AdminHandler) HandleDashboard(c *fiber.Ctx) error {
	stats, err := h.adminService.Dashboard()
	if err != nil {
		log.Printf("Error computing dashboard stats: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// HandleListProducts returns a page of all products regardless of status.
func (h *AdminHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 10),
		Status:  c.Query("status"),
	}
	products, pagination, err := h.catalog.List(filter)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"products":   products,
		"pagination": pagination,
	})
}

// AdminProductRequest is the admin product form: unlike the seller form it
// carries the seller assignment.
type AdminProductRequest struct {
	ProductRequest
	SellerID string `json:"seller_id" validate:"required,uuid"`
}

// HandleCreateProduct adds a product on behalf of a seller.
func (h *AdminHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req AdminProductRequest
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
		SellerID:    req.SellerID,
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

// HandleUpdateProduct updates any product.
func (h *AdminHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req AdminProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationErrors(err))
	}

	product := models.Product{
		ID:          c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		SellerID:    req.SellerID,
		Status:      req.Status,
	}
	// Empty sellerID skips the ownership check: admins modify any product.
	if err := h.catalog.UpdateProduct(&product, ""); err != nil {
		log.Printf("Error updating product: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleDeleteProduct removes a product.
func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.catalog.DeleteProduct(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// PriceBreakRequest represents the price break body: exactly one of
// percentage or new_price.
type PriceBreakRequest struct {
	Percentage *int             `json:"percentage"`
	NewPrice   *decimal.Decimal `json:"new_price"`
}

// HandlePriceBreak applies a price break to a product and records the
// approved discount.
func (h *AdminHandler) HandlePriceBreak(c *fiber.Ctx) error {
	var req PriceBreakRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}

	newPrice, percentage, err := h.pricing.ApplyPriceBreak(c.Params("id"), req.Percentage, req.NewPrice)
	if err != nil {
		log.Printf("Error applying price break: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"new_price":  newPrice,
		"percentage": percentage,
	})
}

// HandleListPromotions returns a page of active promotions.
func (h *AdminHandler) HandleListPromotions(c *fiber.Ctx) error {
	promotions, pagination, err := h.pricing.ListPromotions(c.QueryInt("page", 1), c.QueryInt("per_page", repositories.DefaultPageSize))
	if err != nil {
		log.Printf("Error listing promotions: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"promotions": promotions,
		"pagination": pagination,
	})
}

// HandleCancelPromotion removes an approved discount.
func (h *AdminHandler) HandleCancelPromotion(c *fiber.Ctx) error {
	if err := h.pricing.CancelPromotion(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleListOrders returns a page of all orders.
func (h *AdminHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, pagination, err := h.checkoutService.ListAllOrders(c.QueryInt("page", 1), c.QueryInt("per_page", 15))
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"orders":     orders,
		"pagination": pagination,
	})
}

// HandleUpdateOrderStatus transitions an order's status.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationErrors(err))
	}

	if err := h.checkoutService.UpdateOrderStatus(c.Params("id"), req.Status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"status":  req.Status,
	})
}

// HandleListUsers returns a page of users, optionally filtered by role.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, pagination, err := h.adminService.ListUsers(c.Query("role"), c.QueryInt("page", 1), c.QueryInt("per_page", 20))
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"users":      users,
		"pagination": pagination,
	})
}

// SetActiveRequest represents the block/unblock request body.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// HandleSetUserActive blocks or unblocks a user account.
func (h *AdminHandler) HandleSetUserActive(c *fiber.Ctx) error {
	var req SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationErrors(err))
	}

	if err := h.adminService.SetUserActive(c.Params("id"), *req.Active); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleListCategories returns all categories.
func (h *AdminHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": categories,
	})
}

// CategoryRequest represents the category creation body.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// HandleCreateCategory adds a category.
func (h *AdminHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationErrors(err))
	}

	category := models.Category{Name: req.Name}
	if err := h.catalog.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"category": category,
	})
}

// HandleDeleteCategory removes a category.
func (h *AdminHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.catalog.DeleteCategory(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
