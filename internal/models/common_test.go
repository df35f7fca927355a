// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javajoker/storefront/internal/utils"
)

func TestRoundMoneyHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 2.68, RoundMoney(2.675))
	assert.Equal(t, 1.01, RoundMoney(1.005))
	assert.Equal(t, -2.68, RoundMoney(-2.675))
	assert.Equal(t, 3.0, RoundMoney(2.999))
}

func TestValidatorOrderStatusesMatchLifecycle(t *testing.T) {
	names := make([]string, len(AllowedOrderStatuses))
	for i, status := range AllowedOrderStatuses {
		names[i] = string(status)
	}
	assert.Equal(t, names, utils.OrderStatuses)
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("Awaiting_Payment")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusAwaitingPayment, status)

	_, err = ParseOrderStatus("lost")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "pending, awaiting_payment")
}
