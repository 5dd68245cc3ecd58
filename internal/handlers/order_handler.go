package handlers

import (
	"log"

	"marche/internal/middleware"
	"marche/internal/models"
	"marche/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles the shopper-facing checkout and order history.
type OrderHandler struct {
	checkoutService *services.CheckoutService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(checkoutService *services.CheckoutService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService}
}

// RegisterRoutes registers the checkout and order routes. The router must
// already be guarded by AuthRequired; the shopper role is enforced here.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	shopperOnly := middleware.RequireRole(models.RoleShopper)
	router.Post("/checkout", shopperOnly, h.HandleCheckout)
	router.Get("/orders", shopperOnly, h.HandleListOrders)
	router.Get("/orders/:id", shopperOnly, h.HandleGetOrder)
}

// HandleCheckout converts the shopper's cart into an order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	order, err := h.checkoutService.Checkout(middleware.UserID(c))
	if err != nil {
		log.Printf("Checkout failed for shopper %s: %v", middleware.UserID(c), err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"order":   order,
		"total":   order.Total(),
	})
}

// HandleListOrders returns the shopper's most recent orders.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.checkoutService.ListOrders(middleware.UserID(c), 10)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// HandleGetOrder returns one of the shopper's orders.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.checkoutService.GetOrder(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if order.ShopperID != middleware.UserID(c) {
		// A shopper can only see their own orders.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}
