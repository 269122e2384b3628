package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"ecommerce_checkout/domain"
)

// Catalog record types for the JSON seed files.
const (
	TypeRegular            = ""
	TypeExpirable          = "expirable"
	TypeShippable          = "shippable"
	TypeExpirableShippable = "expirable_shippable"
)

const expiryDateFormat = "2006-01-02"

// ProductRecord is the flat JSON shape used by catalog seed files. Expiry can
// be given as an absolute date or as a day count relative to load time, so
// seed files do not go stale.
type ProductRecord struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Type         string  `json:"type,omitempty"`
	Expiry       string  `json:"expiry,omitempty"`
	ExpiryDays   int     `json:"expiry_days,omitempty"`
	Weight       float64 `json:"weight,omitempty"`
	ShippingFees float64 `json:"shipping_fees,omitempty"`
}

// ToProduct constructs the domain product described by the record. All field
// validation happens in the domain constructors, so file data gets the same
// checks as programmatic construction. A nil clock selects the system clock.
func (r ProductRecord) ToProduct(clock domain.Clock) (domain.Sellable, error) {
	switch r.Type {
	case TypeRegular:
		return domain.NewProduct(r.Name, r.Quantity, r.Price)
	case TypeExpirable:
		expiry, err := r.expiryDate(clock)
		if err != nil {
			return nil, err
		}
		return domain.NewExpirableProduct(r.Name, r.Quantity, r.Price, expiry, clock)
	case TypeShippable:
		return domain.NewShippableProduct(r.Name, r.Quantity, r.Price, r.Weight, r.ShippingFees)
	case TypeExpirableShippable:
		expiry, err := r.expiryDate(clock)
		if err != nil {
			return nil, err
		}
		return domain.NewExpirableShippableProduct(r.Name, r.Quantity, r.Price, expiry, clock, r.Weight, r.ShippingFees)
	default:
		return nil, errors.Errorf("record %q: unknown product type %q", r.Name, r.Type)
	}
}

func (r ProductRecord) expiryDate(clock domain.Clock) (time.Time, error) {
	if r.Expiry != "" {
		t, err := time.Parse(expiryDateFormat, r.Expiry)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "record %q: bad expiry date", r.Name)
		}
		return t, nil
	}
	if clock == nil {
		clock = domain.SystemClock()
	}
	return clock.Now().AddDate(0, 0, r.ExpiryDays), nil
}

// RecordOf converts a product back to its file record, deriving the type tag
// from the capabilities the product carries.
func RecordOf(p domain.Sellable) ProductRecord {
	r := ProductRecord{Name: p.Name(), Quantity: p.Quantity(), Price: p.Price()}
	if e, ok := p.(domain.Expirable); ok {
		r.Type = TypeExpirable
		r.Expiry = e.ExpiryDate().Format(expiryDateFormat)
	}
	if s, ok := p.(domain.Shippable); ok {
		if r.Type == TypeExpirable {
			r.Type = TypeExpirableShippable
		} else {
			r.Type = TypeShippable
		}
		r.Weight = s.Weight()
		r.ShippingFees = s.ShippingFees()
	}
	return r
}

// LoadCatalogFile reads a JSON array of ProductRecords and constructs the
// corresponding domain products in file order.
func LoadCatalogFile(path string, clock domain.Clock) ([]domain.Sellable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}
	var records []ProductRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, errors.Wrap(err, "parse catalog file")
	}
	out := make([]domain.Sellable, 0, len(records))
	for _, r := range records {
		p, err := r.ToProduct(clock)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// WriteCatalogFile writes products as an indented JSON array. The write goes
// through a temp file and a rename so a crash never leaves a torn file.
func WriteCatalogFile(path string, products []domain.Sellable) error {
	records := make([]ProductRecord, 0, len(products))
	for _, p := range products {
		records = append(records, RecordOf(p))
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode catalog")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create catalog dir")
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return errors.Wrap(err, "write catalog file")
	}
	return os.Rename(tmp, path)
}
