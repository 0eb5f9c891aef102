package service

import (
	"fmt"
	"time"

	"github.com/rookgm/fooddelivery/internal/models"
)

// transitions lists allowed target statuses per current status.
// Orders move along the forward chain, cancellation is possible only
// before preparation starts. Delivered and cancelled are terminal.
var transitions = map[string][]string{
	models.OrderStatusPending:        {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed:      {models.OrderStatusPreparing, models.OrderStatusCancelled},
	models.OrderStatusPreparing:      {models.OrderStatusOutForDelivery},
	models.OrderStatusOutForDelivery: {models.OrderStatusDelivered},
	models.OrderStatusDelivered:      {},
	models.OrderStatusCancelled:      {},
}

// OrderLifecycle enforces the order status state machine
type OrderLifecycle struct {
	now func() time.Time
}

// NewOrderLifecycle creates new OrderLifecycle instance
func NewOrderLifecycle() *OrderLifecycle {
	return &OrderLifecycle{now: time.Now}
}

// AllowedFrom returns statuses from which target is a legal transition
func (ol *OrderLifecycle) AllowedFrom(target string) []string {
	var from []string
	for status, targets := range transitions {
		for _, t := range targets {
			if t == target {
				from = append(from, status)
			}
		}
	}
	return from
}

// CanTransition reports whether moving from current to target is legal
func (ol *OrderLifecycle) CanTransition(current, target string) bool {
	for _, t := range transitions[current] {
		if t == target {
			return true
		}
	}
	return false
}

// Transition applies target status to order. The delivered transition
// additionally stamps the actual delivery time. Persistence is the
// caller's responsibility.
func (ol *OrderLifecycle) Transition(order *models.Order, target string) error {
	if _, ok := transitions[target]; !ok {
		return fmt.Errorf("%w: %q", models.ErrUnknownStatus, target)
	}

	if !ol.CanTransition(order.Status, target) {
		return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, order.Status, target)
	}

	order.Status = target
	if target == models.OrderStatusDelivered {
		deliveredAt := ol.now()
		order.ActualDeliveryTime = &deliveredAt
	}

	return nil
}
