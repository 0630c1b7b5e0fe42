package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusConfirmed, status)

	_, err = ParseOrderStatus("SHIPPED")
	assert.Error(t, err)

	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestCanTransitionForwardOnly(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusConfirmed))
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusDelivered))
	assert.True(t, CanTransition(OrderStatusConfirmed, OrderStatusDelivered))

	// re-applying the current status is a no-op, not an error
	assert.True(t, CanTransition(OrderStatusConfirmed, OrderStatusConfirmed))

	assert.False(t, CanTransition(OrderStatusDelivered, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatusConfirmed, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatusDelivered, OrderStatusConfirmed))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("merchant")
	assert.NoError(t, err)
	assert.Equal(t, RoleMerchant, role)

	role, err = ParseRole("CUSTOMER")
	assert.NoError(t, err)
	assert.Equal(t, RoleCustomer, role)

	_, err = ParseRole("ADMIN")
	assert.Error(t, err)
}
