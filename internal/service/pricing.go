package service

import (
	"fmt"
	"math"

	"github.com/rookgm/fooddelivery/internal/models"
)

// pricingTolerance is maximum allowed divergence between client-supplied
// and derived totals
const pricingTolerance = 0.01

// PricingCalculator derives order amounts from line items and validates
// client-supplied quotes against them
type PricingCalculator struct {
	deliveryFee float64
	taxRate     float64
}

// NewPricingCalculator creates new PricingCalculator instance
func NewPricingCalculator(deliveryFee, taxRate float64) *PricingCalculator {
	return &PricingCalculator{
		deliveryFee: deliveryFee,
		taxRate:     taxRate,
	}
}

// round2 rounds to 2 decimal places, half up
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// Derive computes subtotal, delivery fee, tax and total for items
func (pc *PricingCalculator) Derive(items []models.OrderItem) models.Pricing {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	subtotal = round2(subtotal)

	fee := round2(pc.deliveryFee)
	tax := round2(subtotal * pc.taxRate)

	return models.Pricing{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       round2(subtotal + fee + tax),
	}
}

// Validate recomputes pricing for items and checks the client total
// against it. A total off by more than the tolerance means the client
// submitted a manipulated quote.
func (pc *PricingCalculator) Validate(clientTotal float64, items []models.OrderItem) (models.Pricing, error) {
	derived := pc.Derive(items)

	if math.Abs(clientTotal-derived.Total) > pricingTolerance {
		return models.Pricing{}, fmt.Errorf("%w: expected total %.2f, got %.2f",
			models.ErrPricingMismatch, derived.Total, clientTotal)
	}

	return derived, nil
}
