// internal/services/store.go
package services

import (
	"sync"

	"github.com/javajoker/storefront/internal/models"
)

// Store holds one inventory and the orders drawing on it. Orders and stock
// form a single consistency unit, so one mutex guards both; every service
// method holds it for its whole duration.
type Store struct {
	mu        sync.Mutex
	inventory *models.Inventory
	orders    map[string]*models.Order
	orderIDs  []string
}

func NewStore() *Store {
	return &Store{
		inventory: models.NewInventory(),
		orders:    make(map[string]*models.Order),
	}
}

func (s *Store) order(orderID string) (*models.Order, error) {
	order, exists := s.orders[orderID]
	if !exists {
		return nil, &models.Error{Kind: models.ErrNotFound, Message: "order with ID " + orderID + " not found"}
	}
	return order, nil
}
