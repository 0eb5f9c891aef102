package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/rookgm/fooddelivery/internal/models"
	"github.com/stretchr/testify/assert"
)

// ids below are syntactically not uuids, the lookup must report not
// found instead of sending an uncastable value to the store
func TestOrderRepository_GetOrderByID_MalformedID(t *testing.T) {
	tests := []struct {
		name       string
		orderID    string
		customerID string
	}{
		{name: "plain_word", orderID: "abc"},
		{name: "empty_id", orderID: ""},
		{name: "truncated_uuid", orderID: "123e4567-e89b-12d3-a456"},
		{name: "scoped_lookup", orderID: "abc", customerID: "c1"},
	}

	repo := NewOrderRepository(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.GetOrderByID(context.Background(), tt.orderID, tt.customerID)
			assert.True(t, errors.Is(err, models.ErrDataNotFound))
		})
	}
}

func TestOrderRepository_UpdateOrderStatus_MalformedID(t *testing.T) {
	repo := NewOrderRepository(nil)

	_, err := repo.UpdateOrderStatus(context.Background(), "abc", models.OrderStatusConfirmed,
		[]string{models.OrderStatusPending}, nil)
	assert.True(t, errors.Is(err, models.ErrDataNotFound))
}

func TestUserRepository_GetUserByID_MalformedID(t *testing.T) {
	repo := NewUserRepository(nil)

	_, err := repo.GetUserByID(context.Background(), "not-a-uuid")
	assert.True(t, errors.Is(err, models.ErrDataNotFound))
}
