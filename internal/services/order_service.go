// internal/services/order_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront/internal/models"
	"github.com/javajoker/storefront/internal/utils"
)

// OrderService runs the order lifecycle against the store's inventory. Every
// line-item change is mirrored in stock.
type OrderService struct {
	store *Store
}

type CreateOrderRequest struct {
	OrderID    string `json:"order_id,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

func NewOrderService(store *Store) *OrderService {
	return &OrderService{store: store}
}

func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.OrderSummary, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if req.OrderID != "" {
		if _, exists := s.store.orders[req.OrderID]; exists {
			return nil, &models.Error{Kind: models.ErrConflict, Message: fmt.Sprintf("order with ID %s already exists", req.OrderID)}
		}
	}

	order := models.NewOrder(req.OrderID, req.CustomerID)
	s.store.orders[order.ID()] = order
	s.store.orderIDs = append(s.store.orderIDs, order.ID())

	logrus.WithFields(logrus.Fields{
		"order_id":    order.ID(),
		"customer_id": order.CustomerID(),
	}).Info("Order created")

	summary := order.Summary()
	return &summary, nil
}

func (s *OrderService) GetOrder(orderID string) (*models.OrderSummary, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	order, err := s.store.order(orderID)
	if err != nil {
		return nil, err
	}
	summary := order.Summary()
	return &summary, nil
}

// ListOrders returns a page of order summaries in creation order, optionally
// restricted to one customer.
func (s *OrderService) ListOrders(customerID string, params utils.PaginationParams) ([]models.OrderSummary, int64) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var matched []*models.Order
	for _, id := range s.store.orderIDs {
		order := s.store.orders[id]
		if customerID != "" && order.CustomerID() != customerID {
			continue
		}
		matched = append(matched, order)
	}

	page := utils.Paginate(matched, params)
	summaries := make([]models.OrderSummary, len(page))
	for i, order := range page {
		summaries[i] = order.Summary()
	}
	return summaries, int64(len(matched))
}

func (s *OrderService) AddItem(orderID string, req *AddItemRequest) (*models.OrderSummary, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidArgument, utils.ValidationMessage(err))
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	order, err := s.store.order(orderID)
	if err != nil {
		return nil, err
	}
	product, err := s.store.inventory.GetProduct(req.ProductID)
	if err != nil {
		return nil, err
	}
	if err := order.AddItem(product, req.Quantity, s.store.inventory); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":   orderID,
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
		"stock":      product.Quantity(),
	}).Info("Item added to order")

	summary := order.Summary()
	return &summary, nil
}

func (s *OrderService) RemoveItem(orderID, productID string, quantity int) (*models.OrderSummary, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	order, err := s.store.order(orderID)
	if err != nil {
		return nil, err
	}
	if err := order.RemoveItem(productID, quantity, s.store.inventory); err != nil {
		if models.KindOf(err) == models.ErrConflict {
			logrus.WithError(err).WithFields(logrus.Fields{
				"order_id":   orderID,
				"product_id": productID,
			}).Error("Order and inventory out of step")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":   orderID,
		"product_id": productID,
		"quantity":   quantity,
	}).Info("Item removed from order")

	summary := order.Summary()
	return &summary, nil
}

func (s *OrderService) Finalize(orderID string) (*models.OrderSummary, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	order, err := s.store.order(orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Finalize(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"status":   order.Status(),
		"total":    order.CalculateTotal(),
	}).Info("Order finalized")

	summary := order.Summary()
	return &summary, nil
}

func (s *OrderService) UpdateStatus(orderID string, req *UpdateStatusRequest) (*models.OrderSummary, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	order, err := s.store.order(orderID)
	if err != nil {
		return nil, err
	}

	previous := order.Status()
	if err := order.UpdateStatus(req.Status); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"from":     previous,
		"to":       order.Status(),
	}).Info("Order status updated")

	summary := order.Summary()
	return &summary, nil
}
