package domain

import "strings"

// Customer is a buyer with a spendable balance.
type Customer struct {
	name    string
	balance float64
}

// NewCustomer constructs a Customer. The name must be non-blank and the
// balance strictly positive.
func NewCustomer(name string, balance float64) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidCustomerError("name", "cannot be blank", name)
	}
	if balance <= 0 {
		return nil, NewInvalidCustomerError("balance", "must be positive", balance)
	}
	return &Customer{name: name, balance: balance}, nil
}

// Name returns the customer name.
func (c *Customer) Name() string { return c.name }

// Balance returns the amount available to spend.
func (c *Customer) Balance() float64 { return c.balance }
