package service_test

import (
	"errors"
	"testing"

	"github.com/rookgm/fooddelivery/internal/models"
	"github.com/rookgm/fooddelivery/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLifecycle_Transition(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		wantErr error
	}{
		{name: "pending_to_confirmed", current: models.OrderStatusPending, target: models.OrderStatusConfirmed},
		{name: "pending_to_cancelled", current: models.OrderStatusPending, target: models.OrderStatusCancelled},
		{name: "confirmed_to_preparing", current: models.OrderStatusConfirmed, target: models.OrderStatusPreparing},
		{name: "confirmed_to_cancelled", current: models.OrderStatusConfirmed, target: models.OrderStatusCancelled},
		{name: "preparing_to_out_for_delivery", current: models.OrderStatusPreparing, target: models.OrderStatusOutForDelivery},
		{name: "out_for_delivery_to_delivered", current: models.OrderStatusOutForDelivery, target: models.OrderStatusDelivered},
		{name: "pending_skips_to_preparing", current: models.OrderStatusPending, target: models.OrderStatusPreparing, wantErr: models.ErrInvalidTransition},
		{name: "preparing_cannot_cancel", current: models.OrderStatusPreparing, target: models.OrderStatusCancelled, wantErr: models.ErrInvalidTransition},
		{name: "out_for_delivery_cannot_cancel", current: models.OrderStatusOutForDelivery, target: models.OrderStatusCancelled, wantErr: models.ErrInvalidTransition},
		{name: "delivered_is_terminal", current: models.OrderStatusDelivered, target: models.OrderStatusPending, wantErr: models.ErrInvalidTransition},
		{name: "cancelled_is_terminal", current: models.OrderStatusCancelled, target: models.OrderStatusConfirmed, wantErr: models.ErrInvalidTransition},
		{name: "unknown_target_status", current: models.OrderStatusPending, target: "shipped", wantErr: models.ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := service.NewOrderLifecycle()
			order := models.Order{Status: tt.current}

			err := lc.Transition(&order, tt.target)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, tt.current, order.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.target, order.Status)
		})
	}
}

func TestOrderLifecycle_DeliveredStampsTime(t *testing.T) {
	lc := service.NewOrderLifecycle()

	order := models.Order{Status: models.OrderStatusOutForDelivery}
	require.Nil(t, order.ActualDeliveryTime)

	err := lc.Transition(&order, models.OrderStatusDelivered)
	require.NoError(t, err)
	require.NotNil(t, order.ActualDeliveryTime)
	assert.False(t, order.ActualDeliveryTime.IsZero())
}

func TestOrderLifecycle_OnlyDeliveredStampsTime(t *testing.T) {
	lc := service.NewOrderLifecycle()

	order := models.Order{Status: models.OrderStatusPending}

	for _, target := range []string{
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusOutForDelivery,
	} {
		require.NoError(t, lc.Transition(&order, target))
		assert.Nil(t, order.ActualDeliveryTime)
	}
}

func TestOrderLifecycle_AllowedFrom(t *testing.T) {
	lc := service.NewOrderLifecycle()

	from := lc.AllowedFrom(models.OrderStatusCancelled)

	assert.ElementsMatch(t, []string{models.OrderStatusPending, models.OrderStatusConfirmed}, from)
}
