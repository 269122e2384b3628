package domain

import "time"

// shippingAttributes holds the Shippable capability data shared by the
// shippable product variants.
type shippingAttributes struct {
	weight       float64
	shippingFees float64
}

// SetWeight replaces the per-unit weight in kilograms; non-positive values
// are rejected with an InvalidShippingAttributeError.
func (a *shippingAttributes) SetWeight(weight float64) error {
	if weight <= 0 {
		return NewInvalidShippingAttributeError("weight", weight)
	}
	a.weight = weight
	return nil
}

// SetShippingFees replaces the per-unit shipping fee; non-positive values
// are rejected with an InvalidShippingAttributeError.
func (a *shippingAttributes) SetShippingFees(fees float64) error {
	if fees <= 0 {
		return NewInvalidShippingAttributeError("shipping fees", fees)
	}
	a.shippingFees = fees
	return nil
}

// Weight returns the per-unit weight in kilograms.
func (a *shippingAttributes) Weight() float64 { return a.weight }

// ShippingFees returns the per-unit shipping fee.
func (a *shippingAttributes) ShippingFees() float64 { return a.shippingFees }

// ShippableProduct is a Product that incurs shipping weight and fees.
type ShippableProduct struct {
	Product
	shippingAttributes
}

var _ Sellable = (*ShippableProduct)(nil)
var _ Shippable = (*ShippableProduct)(nil)

// NewShippableProduct constructs a ShippableProduct with per-unit weight in
// kilograms and a per-unit shipping fee, both strictly positive.
func NewShippableProduct(name string, quantity int, price, weight, shippingFees float64) (*ShippableProduct, error) {
	base, err := NewProduct(name, quantity, price)
	if err != nil {
		return nil, err
	}
	p := &ShippableProduct{Product: *base}
	if err := p.SetWeight(weight); err != nil {
		return nil, err
	}
	if err := p.SetShippingFees(shippingFees); err != nil {
		return nil, err
	}
	return p, nil
}

// ExpirableShippableProduct carries both capabilities; expiry and shipping
// validations apply independently.
type ExpirableShippableProduct struct {
	ExpirableProduct
	shippingAttributes
}

var _ Sellable = (*ExpirableShippableProduct)(nil)
var _ Expirable = (*ExpirableShippableProduct)(nil)
var _ Shippable = (*ExpirableShippableProduct)(nil)

// NewExpirableShippableProduct constructs a product that both expires and
// ships. A nil clock selects the system clock.
func NewExpirableShippableProduct(name string, quantity int, price float64, expiry time.Time, clock Clock, weight, shippingFees float64) (*ExpirableShippableProduct, error) {
	exp, err := NewExpirableProduct(name, quantity, price, expiry, clock)
	if err != nil {
		return nil, err
	}
	p := &ExpirableShippableProduct{ExpirableProduct: *exp}
	if err := p.SetWeight(weight); err != nil {
		return nil, err
	}
	if err := p.SetShippingFees(shippingFees); err != nil {
		return nil, err
	}
	return p, nil
}
