// Package domain defines core business types for the checkout system.
package domain

import (
	"strings"
	"time"
)

// Sellable is what a cart needs from any product variant.
type Sellable interface {
	Name() string
	Price() float64
	Quantity() int
	ReduceQuantity(n int) error
}

// Expirable is the capability of products that go off. IsExpired is
// recomputed on every call against the product's clock.
type Expirable interface {
	ExpiryDate() time.Time
	IsExpired() bool
}

// Shippable is the capability of products that incur physical shipping
// weight (kg per unit) and a per-unit shipping fee.
type Shippable interface {
	Weight() float64
	ShippingFees() float64
}

// Product is a plain catalog product. Name and price are fixed after
// construction; quantity changes only through ReduceQuantity.
type Product struct {
	name     string
	quantity int
	price    float64
}

// compile-time assertion that Product satisfies Sellable
var _ Sellable = (*Product)(nil)

// NewProduct constructs a Product, rejecting blank names and non-positive
// quantities or prices with an InvalidProductError.
func NewProduct(name string, quantity int, price float64) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidProductError("name", "cannot be blank", name)
	}
	if quantity <= 0 {
		return nil, NewInvalidProductError("quantity", "must be positive", quantity)
	}
	if price <= 0 {
		return nil, NewInvalidProductError("price", "must be positive", price)
	}
	return &Product{name: name, quantity: quantity, price: price}, nil
}

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Quantity returns the stock currently available.
func (p *Product) Quantity() int { return p.quantity }

// Price returns the unit price.
func (p *Product) Price() float64 { return p.price }

// ReduceQuantity decrements available stock by n. Stock is left untouched
// when the request cannot be satisfied; callers must check the error before
// assuming the reduction happened.
func (p *Product) ReduceQuantity(n int) error {
	if n <= 0 {
		return NewInvalidProductError("quantity", "must be positive", n)
	}
	if n > p.quantity {
		return NewInsufficientStockError(p.name, n, p.quantity)
	}
	p.quantity -= n
	return nil
}
