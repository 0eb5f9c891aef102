package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const orderNumberSuffixLen = 4

// OrderSequencer is interface for the store-backed order number sequence
type OrderSequencer interface {
	// NextOrderSeq atomically increments and returns the sequence
	NextOrderSeq(ctx context.Context) (int64, error)
}

// OrderNumberGenerator produces unique human-readable order numbers.
// Uniqueness rests on an atomic store-side sequence rather than any
// in-process counter, two concurrent creations always see distinct
// sequence values.
type OrderNumberGenerator struct {
	seq OrderSequencer
}

// NewOrderNumberGenerator creates new OrderNumberGenerator instance
func NewOrderNumberGenerator(seq OrderSequencer) *OrderNumberGenerator {
	return &OrderNumberGenerator{seq: seq}
}

// Next returns next order number formatted as ORD<sequence><suffix>
func (g *OrderNumberGenerator) Next(ctx context.Context) (string, error) {
	seq, err := g.seq.NextOrderSeq(ctx)
	if err != nil {
		return "", err
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:orderNumberSuffixLen]

	return fmt.Sprintf("ORD%d%s", seq, strings.ToUpper(suffix)), nil
}
