package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"marche/internal/models"
	"marche/internal/repositories"
	"marche/pkg/rabbitmq"
)

// CheckoutService converts carts into orders and manages order and delivery
// status transitions.
type CheckoutService struct {
	cartRepo     repositories.CartRepository
	orderRepo    repositories.OrderRepository
	deliveryRepo repositories.DeliveryRepository
	pricing      *PricingService
	mqClient     *rabbitmq.Client
}

// NewCheckoutService creates a new CheckoutService. mqClient may be nil, in
// which case order events are skipped.
func NewCheckoutService(
	cartRepo repositories.CartRepository,
	orderRepo repositories.OrderRepository,
	deliveryRepo repositories.DeliveryRepository,
	pricing *PricingService,
	mqClient *rabbitmq.Client,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		deliveryRepo: deliveryRepo,
		pricing:      pricing,
		mqClient:     mqClient,
	}
}

// Checkout converts the shopper's cart into an order. Each line's unit price
// is resolved through the discount resolver at this moment and frozen on the
// order item. Stock decrements, delivery rows, and the cart wipe happen in
// the same transaction as the order insert; any failure rolls everything
// back and surfaces ErrCheckoutFailed.
func (s *CheckoutService) Checkout(shopperID string) (*models.Order, error) {
	cart, err := s.cartRepo.GetByShopper(shopperID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	products := make([]models.Product, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product == nil {
			return nil, fmt.Errorf("%w: cart item %s references a missing product", ErrCheckoutFailed, item.ID)
		}
		products = append(products, *item.Product)
	}

	priced, err := s.pricing.ResolveAll(products)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCheckoutFailed, err)
	}

	order := &models.Order{
		ShopperID: shopperID,
		Status:    models.OrderPending,
		Items:     make([]models.OrderItem, len(cart.Items)),
	}
	decrements := make([]repositories.StockDecrement, len(cart.Items))
	sellers := make(map[string]struct{})

	for i, item := range cart.Items {
		order.Items[i] = models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     priced[i].UnitPrice, // frozen snapshot
		}
		decrements[i] = repositories.StockDecrement{ProductID: item.ProductID, Quantity: item.Quantity}
		sellers[item.Product.SellerID] = struct{}{}
	}

	deliveries := make([]models.Delivery, 0, len(sellers))
	for sellerID := range sellers {
		deliveries = append(deliveries, models.Delivery{
			SellerID: sellerID,
			Status:   models.DeliveryPending,
		})
	}

	if err := s.orderRepo.CreateFromCart(order, decrements, deliveries, cart.ID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCheckoutFailed, err)
	}

	s.publishOrderCreated(order)
	return order, nil
}

// publishOrderCreated emits an order.created event. Event delivery is best
// effort: a publish failure is logged, never surfaced to the shopper.
func (s *CheckoutService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping order event.")
		return
	}

	event := map[string]interface{}{
		"order_id":   order.ID,
		"shopper_id": order.ShopperID,
		"status":     order.Status,
		"total":      order.Total(),
		"items":      len(order.Items),
	}
	if err := s.mqClient.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	}
}

// ListOrders retrieves a shopper's most recent orders.
func (s *CheckoutService) ListOrders(shopperID string, limit int) ([]models.Order, error) {
	return s.orderRepo.ListByShopper(shopperID, limit)
}

// ListAllOrders retrieves a page of all orders for the admin panel.
func (s *CheckoutService) ListAllOrders(page, perPage int) ([]models.Order, repositories.Pagination, error) {
	return s.orderRepo.List(page, perPage)
}

// GetOrder retrieves a single order by ID.
func (s *CheckoutService) GetOrder(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateOrderStatus transitions an order to a new status.
func (s *CheckoutService) UpdateOrderStatus(id, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return s.orderRepo.UpdateStatus(id, status)
}

// ListDeliveries retrieves a seller's deliveries.
func (s *CheckoutService) ListDeliveries(sellerID string) ([]models.Delivery, error) {
	return s.deliveryRepo.ListBySeller(sellerID)
}

// UpdateDeliveryStatus transitions one of the seller's deliveries. Reaching
// the delivered status stamps the delivery time.
func (s *CheckoutService) UpdateDeliveryStatus(sellerID, deliveryID, status string) (*models.Delivery, error) {
	if !models.ValidDeliveryStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	delivery, err := s.deliveryRepo.GetForSeller(deliveryID, sellerID)
	if err != nil {
		return nil, err
	}

	delivery.Status = status
	if status == models.DeliveryDelivered && delivery.DeliveredAt == nil {
		now := time.Now()
		delivery.DeliveredAt = &now
	}
	if err := s.deliveryRepo.Update(delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}
