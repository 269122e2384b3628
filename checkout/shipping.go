// Package checkout implements the checkout pipeline: shipping aggregation,
// precondition validation and receipt rendering.
package checkout

import "ecommerce_checkout/domain"

// ShippingService aggregates shipping fees and package weight over the
// shippable subset of a cart snapshot. It computes once at construction and
// never recomputes, so construct it only after the cart is final.
type ShippingService struct {
	lines          []domain.Line
	shippableLines []domain.Line
	totalFees      float64
	totalWeight    float64
}

// NewShippingService constructs a ShippingService from cart lines. An empty
// snapshot is rejected with an InvalidShippingInputError. Lines whose product
// is not Shippable contribute nothing; that is not an error, regular and
// digital goods simply ship no package.
func NewShippingService(lines []domain.Line) (*ShippingService, error) {
	if len(lines) == 0 {
		return nil, domain.NewInvalidShippingInputError()
	}
	s := &ShippingService{lines: lines}
	for _, l := range lines {
		sp, ok := l.Product.(domain.Shippable)
		if !ok {
			continue
		}
		s.shippableLines = append(s.shippableLines, l)
		s.totalFees += sp.ShippingFees() * float64(l.Quantity)
		s.totalWeight += sp.Weight() * float64(l.Quantity)
	}
	return s, nil
}

// TotalShippingFees returns the fee summed over shippable lines.
func (s *ShippingService) TotalShippingFees() float64 { return s.totalFees }

// TotalWeight returns the package weight in kilograms summed over shippable
// lines.
func (s *ShippingService) TotalWeight() float64 { return s.totalWeight }

// ShippableItems returns a copy of the shippable lines in cart order.
func (s *ShippingService) ShippableItems() []domain.Line {
	out := make([]domain.Line, len(s.shippableLines))
	copy(out, s.shippableLines)
	return out
}
