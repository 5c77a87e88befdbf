package order_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Received))
		assert.Equal(t, 2, int(order.Preparing))
		assert.Equal(t, 3, int(order.Ready))
		assert.Equal(t, 4, int(order.OutForDelivery))
		assert.Equal(t, 5, int(order.Completed))
		assert.Equal(t, 6, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Received,
			order.Preparing,
			order.Ready,
			order.OutForDelivery,
			order.Completed,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(7), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Received, "received"},
		{order.Preparing, "preparing"},
		{order.Ready, "ready"},
		{order.OutForDelivery, "out_for_delivery"},
		{order.Completed, "completed"},
		{order.Cancelled, "cancelled"},
		{order.Unknown, "unknown"},
		{order.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips all valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Received, order.Preparing, order.Ready,
			order.OutForDelivery, order.Completed, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("cooking")
		require.Error(t, err)
	})
}

func TestStatus_Next(t *testing.T) {
	testCases := []struct {
		name         string
		current      order.Status
		deliveryType order.DeliveryType
		expected     order.Status
		ok           bool
	}{
		{"received advances to preparing for pickup", order.Received, order.Pickup, order.Preparing, true},
		{"received advances to preparing for delivery", order.Received, order.Delivery, order.Preparing, true},
		{"preparing advances to ready", order.Preparing, order.Delivery, order.Ready, true},
		{"ready advances to completed for pickup", order.Ready, order.Pickup, order.Completed, true},
		{"ready advances to out_for_delivery for delivery", order.Ready, order.Delivery, order.OutForDelivery, true},
		{"out_for_delivery advances to completed", order.OutForDelivery, order.Delivery, order.Completed, true},
		{"completed is terminal for pickup", order.Completed, order.Pickup, order.Unknown, false},
		{"completed is terminal for delivery", order.Completed, order.Delivery, order.Unknown, false},
		{"cancelled is terminal", order.Cancelled, order.Delivery, order.Unknown, false},
		{"unknown is not in the sequence", order.Unknown, order.Delivery, order.Unknown, false},
		{"out_for_delivery is not in the pickup sequence", order.OutForDelivery, order.Pickup, order.Unknown, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := tc.current.Next(tc.deliveryType)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, next)
		})
	}
}

func TestStatus_ManualTransitions(t *testing.T) {
	testCases := []struct {
		name         string
		current      order.Status
		deliveryType order.DeliveryType
		expected     []order.Status
	}{
		{"received allows preparing and cancelled for delivery", order.Received, order.Delivery,
			[]order.Status{order.Preparing, order.Cancelled}},
		{"received allows preparing and cancelled for pickup", order.Received, order.Pickup,
			[]order.Status{order.Preparing, order.Cancelled}},
		{"preparing allows ready only", order.Preparing, order.Delivery,
			[]order.Status{order.Ready}},
		{"ready allows completed for pickup", order.Ready, order.Pickup,
			[]order.Status{order.Completed}},
		{"ready allows out_for_delivery for delivery", order.Ready, order.Delivery,
			[]order.Status{order.OutForDelivery}},
		{"out_for_delivery allows completed for delivery", order.OutForDelivery, order.Delivery,
			[]order.Status{order.Completed}},
		{"completed is terminal", order.Completed, order.Delivery, nil},
		{"cancelled is terminal", order.Cancelled, order.Pickup, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.current.ManualTransitions(tc.deliveryType))
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("allows transitions in the table", func(t *testing.T) {
		assert.True(t, order.Received.CanTransitionTo(order.Preparing, order.Delivery))
		assert.True(t, order.Received.CanTransitionTo(order.Cancelled, order.Pickup))
		assert.True(t, order.Ready.CanTransitionTo(order.OutForDelivery, order.Delivery))
	})

	t.Run("rejects transitions outside the table", func(t *testing.T) {
		assert.False(t, order.Received.CanTransitionTo(order.Ready, order.Delivery))
		assert.False(t, order.Ready.CanTransitionTo(order.OutForDelivery, order.Pickup))
		assert.False(t, order.Preparing.CanTransitionTo(order.Cancelled, order.Delivery))
		assert.False(t, order.Completed.CanTransitionTo(order.Received, order.Delivery))
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Received.IsTerminal())
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

func TestDeliveryTypeFromString(t *testing.T) {
	testCases := []struct {
		input    string
		expected order.DeliveryType
		wantErr  bool
	}{
		{"pickup", order.Pickup, false},
		{"delivery", order.Delivery, false},
		{"courier", order.UnknownDeliveryType, true},
		{"", order.UnknownDeliveryType, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			dt, err := order.DeliveryTypeFromString(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, dt)
		})
	}
}
