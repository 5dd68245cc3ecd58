package handlers

import (
	"log"

	"marche/internal/middleware"
	"marche/internal/models"
	"marche/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopper's cart.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes. The router must already be
// guarded by AuthRequired; the shopper role is enforced here.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart", middleware.RequireRole(models.RoleShopper))
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Put("/items/quantity", h.HandleSetQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
}

// HandleGetCart returns the cart's priced breakdown and grand total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	totals, err := h.cartService.Totals(middleware.UserID(c))
	if err != nil {
		log.Printf("Error computing cart totals: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"lines":       totals.Lines,
		"grand_total": totals.GrandTotal,
	})
}

// AddItemRequest represents the request body for adding to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// HandleAddItem adds a product to the cart, accumulating the quantity when
// the product is already present.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationErrors(err))
	}

	item, err := h.cartService.AddItem(middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding cart item: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"item":    item,
	})
}

// SetQuantityRequest represents the request body for a quantity change.
// Quantity zero removes the line, so it carries no gt=0 constraint.
type SetQuantityRequest struct {
	ItemID   string `json:"item_id" validate:"required,uuid"`
	Quantity int    `json:"quantity"`
}

// HandleSetQuantity overwrites a cart line's quantity; zero or less deletes
// the line.
func (h *CartHandler) HandleSetQuantity(c *fiber.Ctx) error {
	var req SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, map[string]string{"request": "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationErrors(err))
	}

	if err := h.cartService.SetQuantity(middleware.UserID(c), req.ItemID, req.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleRemoveItem deletes a cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.cartService.RemoveItem(middleware.UserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
