package checkout

import (
	"fmt"
	"strings"

	"ecommerce_checkout/domain"
)

// CheckoutService validates a cart/customer/shipping combination at
// construction and renders the receipt afterwards. It holds references to its
// inputs without copying and performs no mutation.
type CheckoutService struct {
	cart     *domain.Cart
	customer *domain.Customer
	shipping *ShippingService
}

// NewCheckoutService runs the checkout preconditions in order, failing fast
// with a distinct error for each: empty cart, missing customer, missing
// shipping service, then the balance check. A balance exactly equal to the
// cart total plus shipping fees passes.
func NewCheckoutService(cart *domain.Cart, customer *domain.Customer, shipping *ShippingService) (*CheckoutService, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, domain.NewEmptyCartError()
	}
	if customer == nil {
		return nil, domain.NewInvalidCustomerError("customer", "cannot be nil", nil)
	}
	if shipping == nil {
		return nil, domain.NewInvalidShippingServiceError()
	}
	required := cart.TotalPrice() + shipping.TotalShippingFees()
	if customer.Balance() < required {
		return nil, domain.NewInsufficientBalanceError(customer.Balance(), required)
	}
	return &CheckoutService{cart: cart, customer: customer, shipping: shipping}, nil
}

// GenerateReceipt renders the shipment notice and the checkout receipt as a
// single string separated by a blank line. It has no side effects; the caller
// decides where the output goes.
func (s *CheckoutService) GenerateReceipt() string {
	var b strings.Builder
	b.WriteString(s.shipmentNotice())
	b.WriteString("\n\n")
	b.WriteString(s.checkoutReceipt())
	return b.String()
}

// shipmentNotice lists shippable lines in cart order with per-line weight in
// grams, then the total package weight in kilograms.
func (s *CheckoutService) shipmentNotice() string {
	var b strings.Builder
	b.WriteString("** Shipment notice **\n")
	for _, l := range s.cart.Items() {
		sp, ok := l.Product.(domain.Shippable)
		if !ok {
			continue
		}
		grams := sp.Weight() * float64(l.Quantity) * 1000
		fmt.Fprintf(&b, "%dx %-12s %.0fg\n", l.Quantity, l.Product.Name(), grams)
	}
	fmt.Fprintf(&b, "Total package weight %.1fkg", s.shipping.TotalWeight())
	return b.String()
}

// checkoutReceipt lists every cart line with its line total, then the
// subtotal, shipping and amount rows.
func (s *CheckoutService) checkoutReceipt() string {
	var b strings.Builder
	b.WriteString("** Checkout receipt **\n")
	for _, l := range s.cart.Items() {
		lineTotal := l.Product.Price() * float64(l.Quantity)
		fmt.Fprintf(&b, "%dx %-12s %.0f\n", l.Quantity, l.Product.Name(), lineTotal)
	}
	b.WriteString("----------------------\n")
	subtotal := s.cart.TotalPrice()
	shipping := s.shipping.TotalShippingFees()
	fmt.Fprintf(&b, "%-12s %.0f\n", "Subtotal", subtotal)
	fmt.Fprintf(&b, "%-12s %.0f\n", "Shipping", shipping)
	fmt.Fprintf(&b, "%-12s %.0f", "Amount", subtotal+shipping)
	return b.String()
}
