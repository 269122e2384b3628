// Package domain defines error types for the checkout system.
package domain

import (
	"errors"
	"fmt"
	"time"
)

// InvalidProductError is returned when product validation fails
type InvalidProductError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidProductError
func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid product: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidProductError) Is(target error) bool {
	_, ok := target.(*InvalidProductError)
	return ok
}

// InvalidExpiryError is returned when an expiry date is not strictly in the future
type InvalidExpiryError struct {
	Expiry time.Time
}

// Error implements the error interface for InvalidExpiryError
func (e *InvalidExpiryError) Error() string {
	return fmt.Sprintf("invalid expiry: date=%s must be strictly after today", e.Expiry.Format("2006-01-02"))
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidExpiryError) Is(target error) bool {
	_, ok := target.(*InvalidExpiryError)
	return ok
}

// InvalidShippingAttributeError is returned when a shipping weight or fee is not positive
type InvalidShippingAttributeError struct {
	Attribute string
	Value     float64
}

// Error implements the error interface for InvalidShippingAttributeError
func (e *InvalidShippingAttributeError) Error() string {
	return fmt.Sprintf("invalid shipping attribute: %s must be positive, value=%v", e.Attribute, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidShippingAttributeError) Is(target error) bool {
	_, ok := target.(*InvalidShippingAttributeError)
	return ok
}

// InsufficientStockError is returned when a stock reduction exceeds the
// remaining quantity. The reduction did not happen; callers may retry with
// a smaller quantity.
type InsufficientStockError struct {
	Product   string
	Requested int
	Available int
}

// Error implements the error interface for InsufficientStockError
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: product=%s, requested=%d, available=%d", e.Product, e.Requested, e.Available)
}

// Is allows proper error type checking with errors.Is()
func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

// InvalidCustomerError is returned when customer validation fails
type InvalidCustomerError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for InvalidCustomerError
func (e *InvalidCustomerError) Error() string {
	return fmt.Sprintf("invalid customer: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidCustomerError) Is(target error) bool {
	_, ok := target.(*InvalidCustomerError)
	return ok
}

// EmptyCartError is returned when checkout is attempted on a nil or empty cart
type EmptyCartError struct{}

// Error implements the error interface for EmptyCartError
func (e *EmptyCartError) Error() string {
	return "cart cannot be empty"
}

// Is allows proper error type checking with errors.Is()
func (e *EmptyCartError) Is(target error) bool {
	_, ok := target.(*EmptyCartError)
	return ok
}

// InvalidShippingServiceError is returned when checkout is attempted without
// a shipping service
type InvalidShippingServiceError struct{}

// Error implements the error interface for InvalidShippingServiceError
func (e *InvalidShippingServiceError) Error() string {
	return "invalid shipping service"
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidShippingServiceError) Is(target error) bool {
	_, ok := target.(*InvalidShippingServiceError)
	return ok
}

// InvalidShippingInputError is returned when a shipping service is
// constructed from an empty set of cart lines
type InvalidShippingInputError struct{}

// Error implements the error interface for InvalidShippingInputError
func (e *InvalidShippingInputError) Error() string {
	return "invalid shipping input: items cannot be empty"
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidShippingInputError) Is(target error) bool {
	_, ok := target.(*InvalidShippingInputError)
	return ok
}

// InsufficientBalanceError is returned when a customer cannot cover the cart
// total plus shipping fees
type InsufficientBalanceError struct {
	Balance  float64
	Required float64
}

// Error implements the error interface for InsufficientBalanceError
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: balance=%.2f, required=%.2f", e.Balance, e.Required)
}

// Is allows proper error type checking with errors.Is()
func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

// ProductNotFoundError is returned when a product with the given name is not
// in the catalog
type ProductNotFoundError struct {
	Name string
}

// Error implements the error interface for ProductNotFoundError
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: name=%s", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// DuplicateProductError is returned when a product with the same name is
// already in the catalog
type DuplicateProductError struct {
	Name string
}

// Error implements the error interface for DuplicateProductError
func (e *DuplicateProductError) Error() string {
	return fmt.Sprintf("duplicate product: name=%s already exists", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *DuplicateProductError) Is(target error) bool {
	_, ok := target.(*DuplicateProductError)
	return ok
}

// Helper functions for creating errors with context

// NewInvalidProductError creates a new InvalidProductError
func NewInvalidProductError(field, reason string, value interface{}) error {
	return &InvalidProductError{Field: field, Reason: reason, Value: value}
}

// NewInvalidExpiryError creates a new InvalidExpiryError
func NewInvalidExpiryError(expiry time.Time) error {
	return &InvalidExpiryError{Expiry: expiry}
}

// NewInvalidShippingAttributeError creates a new InvalidShippingAttributeError
func NewInvalidShippingAttributeError(attribute string, value float64) error {
	return &InvalidShippingAttributeError{Attribute: attribute, Value: value}
}

// NewInsufficientStockError creates a new InsufficientStockError
func NewInsufficientStockError(product string, requested, available int) error {
	return &InsufficientStockError{Product: product, Requested: requested, Available: available}
}

// NewInvalidCustomerError creates a new InvalidCustomerError
func NewInvalidCustomerError(field, reason string, value interface{}) error {
	return &InvalidCustomerError{Field: field, Reason: reason, Value: value}
}

// NewEmptyCartError creates a new EmptyCartError
func NewEmptyCartError() error {
	return &EmptyCartError{}
}

// NewInvalidShippingServiceError creates a new InvalidShippingServiceError
func NewInvalidShippingServiceError() error {
	return &InvalidShippingServiceError{}
}

// NewInvalidShippingInputError creates a new InvalidShippingInputError
func NewInvalidShippingInputError() error {
	return &InvalidShippingInputError{}
}

// NewInsufficientBalanceError creates a new InsufficientBalanceError
func NewInsufficientBalanceError(balance, required float64) error {
	return &InsufficientBalanceError{Balance: balance, Required: required}
}

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(name string) error {
	return &ProductNotFoundError{Name: name}
}

// NewDuplicateProductError creates a new DuplicateProductError
func NewDuplicateProductError(name string) error {
	return &DuplicateProductError{Name: name}
}

// Type assertion helpers for use with errors.As()

// IsInvalidProductError checks if an error is an InvalidProductError
func IsInvalidProductError(err error) bool {
	var ipe *InvalidProductError
	return errors.As(err, &ipe)
}

// IsInvalidExpiryError checks if an error is an InvalidExpiryError
func IsInvalidExpiryError(err error) bool {
	var iee *InvalidExpiryError
	return errors.As(err, &iee)
}

// IsInvalidShippingAttributeError checks if an error is an InvalidShippingAttributeError
func IsInvalidShippingAttributeError(err error) bool {
	var isa *InvalidShippingAttributeError
	return errors.As(err, &isa)
}

// IsInsufficientStockError checks if an error is an InsufficientStockError
func IsInsufficientStockError(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}

// IsInvalidCustomerError checks if an error is an InvalidCustomerError
func IsInvalidCustomerError(err error) bool {
	var ice *InvalidCustomerError
	return errors.As(err, &ice)
}

// IsEmptyCartError checks if an error is an EmptyCartError
func IsEmptyCartError(err error) bool {
	var ece *EmptyCartError
	return errors.As(err, &ece)
}

// IsInvalidShippingServiceError checks if an error is an InvalidShippingServiceError
func IsInvalidShippingServiceError(err error) bool {
	var iss *InvalidShippingServiceError
	return errors.As(err, &iss)
}

// IsInvalidShippingInputError checks if an error is an InvalidShippingInputError
func IsInvalidShippingInputError(err error) bool {
	var isi *InvalidShippingInputError
	return errors.As(err, &isi)
}

// IsInsufficientBalanceError checks if an error is an InsufficientBalanceError
func IsInsufficientBalanceError(err error) bool {
	var ibe *InsufficientBalanceError
	return errors.As(err, &ibe)
}

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var pnf *ProductNotFoundError
	return errors.As(err, &pnf)
}

// IsDuplicateProductError checks if an error is a DuplicateProductError
func IsDuplicateProductError(err error) bool {
	var dpe *DuplicateProductError
	return errors.As(err, &dpe)
}
