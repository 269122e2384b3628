package domain

import "time"

// ExpirableProduct is a Product with an expiry date.
type ExpirableProduct struct {
	Product
	expiry time.Time
	clock  Clock
}

var _ Sellable = (*ExpirableProduct)(nil)
var _ Expirable = (*ExpirableProduct)(nil)

// NewExpirableProduct constructs an ExpirableProduct. The expiry date must be
// strictly after the clock's today. A nil clock selects the system clock.
func NewExpirableProduct(name string, quantity int, price float64, expiry time.Time, clock Clock) (*ExpirableProduct, error) {
	base, err := NewProduct(name, quantity, price)
	if err != nil {
		return nil, err
	}
	p := &ExpirableProduct{Product: *base, clock: clockOrSystem(clock)}
	if err := p.SetExpiryDate(expiry); err != nil {
		return nil, err
	}
	return p, nil
}

// SetExpiryDate replaces the expiry date. Dates not strictly in the future
// are rejected with an InvalidExpiryError.
func (p *ExpirableProduct) SetExpiryDate(expiry time.Time) error {
	if !dateOnly(expiry).After(dateOnly(p.clock.Now())) {
		return NewInvalidExpiryError(expiry)
	}
	p.expiry = expiry
	return nil
}

// ExpiryDate returns the current expiry date.
func (p *ExpirableProduct) ExpiryDate() time.Time { return p.expiry }

// IsExpired reports whether the expiry date has passed. Nothing is cached:
// the same product flips from fresh to expired once the clock moves past the
// expiry date.
func (p *ExpirableProduct) IsExpired() bool {
	return dateOnly(p.expiry).Before(dateOnly(p.clock.Now()))
}
