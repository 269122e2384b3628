package store

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"ecommerce_checkout/domain"
)

// NewCatalog constructs a Catalog by kind: "memory" or "file". A file catalog
// is a memory catalog pre-seeded from the JSON file at path; a missing seed
// file yields an empty catalog.
func NewCatalog(kind, path string, clock domain.Clock) (Catalog, error) {
	switch kind {
	case "memory", "mem":
		return NewMemoryCatalog(), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("file path required for file catalog")
		}
		c := NewMemoryCatalog()
		products, err := LoadCatalogFile(path, clock)
		if err != nil {
			if os.IsNotExist(errors.Cause(err)) {
				return c, nil
			}
			return nil, err
		}
		for _, p := range products {
			if err := c.Add(context.Background(), p); err != nil {
				return nil, err
			}
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown catalog kind: %s", kind)
	}
}
