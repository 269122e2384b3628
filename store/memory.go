// Package store provides the product catalog backing the checkout CLI.
package store

import (
	"context"
	"sync"

	"ecommerce_checkout/domain"
)

// Catalog owns the canonical product records. Carts hold references obtained
// from Get and reduce stock only through the product's own methods, so a
// successful cart addition decrements the catalog's record exactly once.
type Catalog interface {
	Add(ctx context.Context, product domain.Sellable) error
	Get(ctx context.Context, name string) (domain.Sellable, error)
	List(ctx context.Context) ([]domain.Sellable, error)
}

// MemoryCatalog is a mutex-guarded in-memory Catalog keyed by product name,
// preserving insertion order for listings.
type MemoryCatalog struct {
	mu     sync.RWMutex
	byName map[string]domain.Sellable
	order  []string
}

// NewMemoryCatalog constructs an empty MemoryCatalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		byName: make(map[string]domain.Sellable),
	}
}

// compile-time assertion that MemoryCatalog implements Catalog
var _ Catalog = (*MemoryCatalog)(nil)

func (c *MemoryCatalog) Add(ctx context.Context, product domain.Sellable) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if product == nil {
		return domain.NewInvalidProductError("product", "cannot be nil", nil)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byName[product.Name()]; exists {
		return domain.NewDuplicateProductError(product.Name())
	}
	c.byName[product.Name()] = product
	c.order = append(c.order, product.Name())
	return nil
}

func (c *MemoryCatalog) Get(ctx context.Context, name string) (domain.Sellable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.byName[name]
	if !ok {
		return nil, domain.NewProductNotFoundError(name)
	}
	return p, nil
}

func (c *MemoryCatalog) List(ctx context.Context) ([]domain.Sellable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Sellable, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out, nil
}
