// internal/models/order.go
package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSnapshot is the display data captured when a product is first added
// to an order.
type ProductSnapshot struct {
	ID   string      `json:"product_id"`
	Name string      `json:"name"`
	Type ProductType `json:"type"`
}

// LineItem is one product's quantity and purchase price within an order.
// PriceAtPurchase and Snapshot are never refreshed after creation.
type LineItem struct {
	Snapshot        ProductSnapshot `json:"product_snapshot"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase float64         `json:"price_at_purchase"`
}

type OrderLineSummary struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type OrderSummary struct {
	OrderID    string             `json:"order_id"`
	CustomerID string             `json:"customer_id,omitempty"`
	Status     OrderStatus        `json:"status"`
	Finalized  bool               `json:"finalized"`
	TotalItems int                `json:"total_items"`
	TotalCost  float64            `json:"total_cost"`
	Items      []OrderLineSummary `json:"items"`
}

// Order is a purchase aggregate. Once finalized it stays finalized.
type Order struct {
	id         string
	customerID string
	status     OrderStatus
	items      map[string]*LineItem
	itemIDs    []string
	finalized  bool
}

// NewOrder creates a pending order. An empty orderID is replaced by a
// generated one; an empty customerID means no customer is attached.
func NewOrder(orderID, customerID string) *Order {
	if orderID == "" {
		orderID = uuid.NewString()
	}
	return &Order{
		id:         orderID,
		customerID: customerID,
		status:     OrderStatusPending,
		items:      make(map[string]*LineItem),
	}
}

func (o *Order) ID() string          { return o.id }
func (o *Order) CustomerID() string  { return o.customerID }
func (o *Order) Status() OrderStatus { return o.status }
func (o *Order) IsFinalized() bool   { return o.finalized }

// Items returns copies of the line items in insertion order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, 0, len(o.itemIDs))
	for _, id := range o.itemIDs {
		items = append(items, *o.items[id])
	}
	return items
}

func (o *Order) Item(productID string) (LineItem, bool) {
	item, exists := o.items[productID]
	if !exists {
		return LineItem{}, false
	}
	return *item, true
}

// AddItem puts quantity units of product on the order. When inventory is not
// nil the units are taken out of its stock first. An existing line only grows
// in quantity; its price and snapshot stay as first captured.
func (o *Order) AddItem(product Product, quantity int, inventory *Inventory) error {
	if o.finalized {
		return invalidState("cannot add items to a finalized order")
	}
	if product == nil {
		return invalidArgument("item to add must be a product")
	}
	if quantity <= 0 {
		return invalidArgument("quantity must be a positive integer, got %d", quantity)
	}

	if inventory != nil {
		stocked, err := inventory.GetProduct(product.ID())
		if err != nil {
			return err
		}
		if stocked.Quantity() < quantity {
			return newError(ErrOutOfStock, "not enough stock for %s (ID: %s). Requested: %d, Available: %d",
				product.Name(), product.ID(), quantity, stocked.Quantity())
		}
		if err := inventory.UpdateStock(product.ID(), -quantity); err != nil {
			return err
		}
	}

	if item, exists := o.items[product.ID()]; exists {
		item.Quantity += quantity
		return nil
	}

	o.items[product.ID()] = &LineItem{
		Snapshot: ProductSnapshot{
			ID:   product.ID(),
			Name: product.Name(),
			Type: product.Type(),
		},
		Quantity:        quantity,
		PriceAtPurchase: product.Price(),
	}
	o.itemIDs = append(o.itemIDs, product.ID())
	return nil
}

// RemoveItem takes quantity units of productID off the order and, when
// inventory is not nil, credits them back to its stock. Removal stays legal
// on a finalized order until the status moves past awaiting_payment.
func (o *Order) RemoveItem(productID string, quantity int, inventory *Inventory) error {
	if o.finalized && o.status != OrderStatusPending && o.status != OrderStatusAwaitingPayment {
		return invalidState("cannot remove items from an order with status '%s'", o.status)
	}
	if quantity <= 0 {
		return invalidArgument("quantity to remove must be a positive integer, got %d", quantity)
	}

	item, exists := o.items[productID]
	if !exists {
		return notFound("product with ID %s not found in order", productID)
	}
	if quantity > item.Quantity {
		return invalidState("cannot remove %d units of %s; only %d in order", quantity, productID, item.Quantity)
	}

	item.Quantity -= quantity
	if item.Quantity == 0 {
		o.deleteItem(productID)
	}

	if inventory != nil {
		if err := inventory.UpdateStock(productID, quantity); err != nil {
			if errors.Is(err, ErrNotFound) {
				return newError(ErrInconsistentState, "product %s not found in inventory for restocking: inconsistent state", productID)
			}
			return err
		}
	}
	return nil
}

func (o *Order) deleteItem(productID string) {
	delete(o.items, productID)
	for i, id := range o.itemIDs {
		if id == productID {
			o.itemIDs = append(o.itemIDs[:i], o.itemIDs[i+1:]...)
			return
		}
	}
}

// CalculateTotal prices the order from the purchase-time snapshots only.
func (o *Order) CalculateTotal() float64 {
	total := decimal.Zero
	for _, id := range o.itemIDs {
		item := o.items[id]
		total = total.Add(lineTotal(item.PriceAtPurchase, item.Quantity))
	}
	return total.Round(2).InexactFloat64()
}

// UpdateStatus moves the order to status (matched case-insensitively).
// Delivered orders may only be refunded; cancelled orders never move again.
func (o *Order) UpdateStatus(status string) error {
	next, err := ParseOrderStatus(status)
	if err != nil {
		return err
	}

	switch o.status {
	case OrderStatusDelivered:
		if next != OrderStatusDelivered && next != OrderStatusRefunded {
			return invalidState("cannot change status from '%s' to '%s'", o.status, next)
		}
	case OrderStatusCancelled:
		if next != OrderStatusCancelled {
			return invalidState("cannot change status of a '%s' order", o.status)
		}
	}

	o.status = next
	if next.IsFinalizing() {
		o.finalized = true
	}
	return nil
}

// Finalize closes a non-empty order for unrestricted item mutation and moves
// a pending order to awaiting_payment.
func (o *Order) Finalize() error {
	if len(o.items) == 0 {
		return invalidState("cannot finalize an empty order")
	}

	o.finalized = true
	if o.status == OrderStatusPending {
		o.status = OrderStatusAwaitingPayment
	}
	return nil
}

func (o *Order) Summary() OrderSummary {
	summary := OrderSummary{
		OrderID:    o.id,
		CustomerID: o.customerID,
		Status:     o.status,
		Finalized:  o.finalized,
		TotalCost:  o.CalculateTotal(),
		Items:      make([]OrderLineSummary, 0, len(o.itemIDs)),
	}

	for _, id := range o.itemIDs {
		item := o.items[id]
		summary.TotalItems += item.Quantity
		summary.Items = append(summary.Items, OrderLineSummary{
			ProductID: id,
			Name:      item.Snapshot.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.PriceAtPurchase,
			Subtotal:  lineTotal(item.PriceAtPurchase, item.Quantity).Round(2).InexactFloat64(),
		})
	}
	return summary
}

func (o *Order) String() string {
	return fmt.Sprintf("Order(id='%s', status='%s', items=%d, total=%v)", o.id, o.status, len(o.itemIDs), o.CalculateTotal())
}
