package domain

import (
	"errors"
	"testing"
	"time"
)

func TestInvalidProductError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewInvalidProductError("price", "must be positive", -10.5)
		expected := "invalid product: field=price, reason=must be positive, value=-10.5"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		err := NewInvalidProductError("name", "cannot be blank", "")
		target := &InvalidProductError{}
		if !errors.Is(err, target) {
			t.Error("errors.Is should detect InvalidProductError")
		}
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewInvalidProductError("quantity", "must be positive", -5)
		var ipe *InvalidProductError
		if !errors.As(err, &ipe) {
			t.Fatal("errors.As should convert to InvalidProductError")
		}
		if ipe.Field != "quantity" || ipe.Reason != "must be positive" {
			t.Errorf("error fields not correctly preserved")
		}
	})

	t.Run("IsInvalidProductError helper", func(t *testing.T) {
		err := NewInvalidProductError("name", "cannot be blank", " ")
		if !IsInvalidProductError(err) {
			t.Error("IsInvalidProductError should return true")
		}
	})
}

func TestInsufficientStockError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewInsufficientStockError("Pen", 12, 5)
		expected := "insufficient stock: product=Pen, requested=12, available=5"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewInsufficientStockError("Pen", 12, 5)
		var ise *InsufficientStockError
		if !errors.As(err, &ise) {
			t.Fatal("errors.As should convert to InsufficientStockError")
		}
		if ise.Requested != 12 || ise.Available != 5 {
			t.Errorf("error fields not correctly preserved")
		}
	})

	t.Run("IsInsufficientStockError helper", func(t *testing.T) {
		if !IsInsufficientStockError(NewInsufficientStockError("Pen", 2, 1)) {
			t.Error("IsInsufficientStockError should return true")
		}
	})
}

func TestInsufficientBalanceError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewInsufficientBalanceError(79.99, 80)
		expected := "insufficient balance: balance=79.99, required=80.00"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewInsufficientBalanceError(100, 150)
		var ibe *InsufficientBalanceError
		if !errors.As(err, &ibe) {
			t.Fatal("errors.As should convert to InsufficientBalanceError")
		}
		if ibe.Balance != 100 || ibe.Required != 150 {
			t.Errorf("error fields not correctly preserved")
		}
	})
}

func TestInvalidExpiryError(t *testing.T) {
	expiry := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	err := NewInvalidExpiryError(expiry)
	expected := "invalid expiry: date=2026-08-01 must be strictly after today"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !IsInvalidExpiryError(err) {
		t.Error("IsInvalidExpiryError should return true")
	}
}

func TestCatalogErrors(t *testing.T) {
	t.Run("product not found", func(t *testing.T) {
		err := NewProductNotFoundError("Laptop")
		expected := "product not found: name=Laptop"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
		if !IsProductNotFoundError(err) {
			t.Error("IsProductNotFoundError should return true")
		}
	})

	t.Run("duplicate product", func(t *testing.T) {
		err := NewDuplicateProductError("Laptop")
		expected := "duplicate product: name=Laptop already exists"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
		if !IsDuplicateProductError(err) {
			t.Error("IsDuplicateProductError should return true")
		}
	})
}

func TestErrorTypeDiscrimination(t *testing.T) {
	t.Run("Different error types are not confused", func(t *testing.T) {
		errs := []struct {
			err     error
			matches func(error) bool
		}{
			{NewInvalidProductError("price", "negative", -5), IsInvalidProductError},
			{NewInvalidExpiryError(time.Now()), IsInvalidExpiryError},
			{NewInvalidShippingAttributeError("weight", 0), IsInvalidShippingAttributeError},
			{NewInsufficientStockError("Pen", 2, 1), IsInsufficientStockError},
			{NewInvalidCustomerError("balance", "must be positive", 0), IsInvalidCustomerError},
			{NewEmptyCartError(), IsEmptyCartError},
			{NewInvalidShippingServiceError(), IsInvalidShippingServiceError},
			{NewInvalidShippingInputError(), IsInvalidShippingInputError},
			{NewInsufficientBalanceError(1, 2), IsInsufficientBalanceError},
			{NewProductNotFoundError("x"), IsProductNotFoundError},
			{NewDuplicateProductError("x"), IsDuplicateProductError},
		}

		for i, e := range errs {
			if !e.matches(e.err) {
				t.Errorf("error %d: own helper should match %v", i, e.err)
			}
			for j, other := range errs {
				if i == j {
					continue
				}
				if other.matches(e.err) {
					t.Errorf("error %d (%v) wrongly matched by helper %d", i, e.err, j)
				}
			}
		}
	})
}
