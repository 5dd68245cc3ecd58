package handlers

import (
	"log"

	"marche/internal/repositories"
	"marche/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CatalogHandler handles the public storefront: home page, product listing
// and detail, promotions, and categories.
type CatalogHandler struct {
	catalog *services.CatalogService
	pricing *services.PricingService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *services.CatalogService, pricing *services.PricingService) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		pricing: pricing,
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	catalogRoutes := router.Group("/catalog")
	catalogRoutes.Get("/home", h.HandleHome)
	catalogRoutes.Get("/products", h.HandleListProducts)
	catalogRoutes.Get("/products/:id", h.HandleGetProduct)
	catalogRoutes.Get("/promotions", h.HandleListPromotions)
	catalogRoutes.Get("/categories", h.HandleListCategories)
}

// HandleHome returns the home page sections.
func (h *CatalogHandler) HandleHome(c *fiber.Ctx) error {
	home, err := h.catalog.Home()
	if err != nil {
		log.Printf("Error building home page: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"home":    home,
	})
}

// HandleListProducts returns a filtered, paginated product listing.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		CategoryID: c.Query("category"),
		Search:     c.Query("search"),
		Page:       c.QueryInt("page", 1),
		PerPage:    c.QueryInt("per_page", repositories.DefaultPageSize),
	}
	if raw := c.Query("price_min"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return badRequest(c, map[string]string{"price_min": "Invalid price"})
		}
		filter.PriceMin = &min
	}
	if raw := c.Query("price_max"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return badRequest(c, map[string]string{"price_max": "Invalid price"})
		}
		filter.PriceMax = &max
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

// HandleGetProduct returns a product detail with similar products.
func (h *CatalogHandler) HandleGetProduct(c *fiber.Ctx) error {
	detail, err := h.catalog.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"product": detail,
	})
}

// HandleListPromotions returns a page of active promotions.
func (h *CatalogHandler) HandleListPromotions(c *fiber.Ctx) error {
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

// HandleListCategories returns all categories.
func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": categories,
	})
}
