// internal/models/common.go
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Details is a flat key/value snapshot of a product.
type Details map[string]interface{}

// Enums
type ProductType string

const (
	ProductTypeGeneric  ProductType = "GenericProduct"
	ProductTypeDigital  ProductType = "DigitalProduct"
	ProductTypePhysical ProductType = "PhysicalProduct"
)

type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusAwaitingPayment OrderStatus = "awaiting_payment"
	OrderStatusProcessing      OrderStatus = "processing"
	OrderStatusShipped         OrderStatus = "shipped"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusRefunded        OrderStatus = "refunded"
)

// AllowedOrderStatuses lists every recognized status in lifecycle order.
var AllowedOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAwaitingPayment,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

// ParseOrderStatus matches s case-insensitively against AllowedOrderStatuses.
func ParseOrderStatus(s string) (OrderStatus, error) {
	lowered := OrderStatus(strings.ToLower(s))
	for _, status := range AllowedOrderStatuses {
		if status == lowered {
			return status, nil
		}
	}

	names := make([]string, len(AllowedOrderStatuses))
	for i, status := range AllowedOrderStatuses {
		names[i] = string(status)
	}
	return "", invalidArgument("invalid order status '%s'; allowed statuses are: %s", s, strings.Join(names, ", "))
}

// IsFinalizing reports whether entering s closes the order for item mutation.
func (s OrderStatus) IsFinalizing() bool {
	switch s {
	case OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// RoundMoney rounds an amount to two decimal places, half away from zero on
// the shortest decimal form of amount. It therefore differs from binary float
// rounding: 2.675 becomes 2.68, not 2.67.
func RoundMoney(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

func lineTotal(unitPrice float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
}
