package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecommerce_checkout/checkout"
	"ecommerce_checkout/domain"
)

// The demo scenarios exercise the whole pipeline end to end: every product
// variant, merged lines, and each checkout failure mode.
func init() {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in checkout scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := []struct {
				name string
				run  func() (string, error)
			}{
				{"Successful mixed products checkout", demoMixedProducts},
				{"Only regular products (no shipping)", demoRegularProducts},
				{"Only shippable products", demoShippableProducts},
				{"Expirable products", demoExpirableProducts},
				{"Expirable + shippable products", demoExpirableShippableProducts},
				{"Insufficient customer balance", demoInsufficientBalance},
				{"Empty cart", demoEmptyCart},
				{"Large order with multiple quantities", demoLargeOrder},
				{"Zero balance customer", demoZeroBalanceCustomer},
				{"Exact balance", demoExactBalance},
			}
			for _, s := range scenarios {
				fmt.Printf("--- %s ---\n", s.name)
				out, err := s.run()
				if err != nil {
					fmt.Printf("checkout failed: %v\n\n", err)
					continue
				}
				fmt.Println(out)
				fmt.Println()
			}
			return nil
		},
	}
	rootCmd.AddCommand(demoCmd)
}

// runCheckout wires a final cart and customer through the shipping and
// checkout services and returns the rendered receipt.
func runCheckout(cart *domain.Cart, customer *domain.Customer) (string, error) {
	shipping, err := checkout.NewShippingService(cart.Items())
	if err != nil {
		return "", err
	}
	svc, err := checkout.NewCheckoutService(cart, customer, shipping)
	if err != nil {
		return "", err
	}
	return svc.GenerateReceipt(), nil
}

func demoMixedProducts() (string, error) {
	ebook, err := domain.NewProduct("E-Book", 100, 25.0)
	if err != nil {
		return "", err
	}
	laptop, err := domain.NewShippableProduct("Laptop", 5, 999.99, 2.5, 50.0)
	if err != nil {
		return "", err
	}
	milk, err := domain.NewExpirableProduct("Milk", 50, 5.99, clock.Now().AddDate(0, 0, 7), clock)
	if err != nil {
		return "", err
	}

	cart := domain.NewCart()
	if err := cart.AddItem(ebook, 2); err != nil {
		return "", err
	}
	if err := cart.AddItem(laptop, 1); err != nil {
		return "", err
	}
	if err := cart.AddItem(milk, 3); err != nil {
		return "", err
	}

	customer, err := domain.NewCustomer("John Doe", 1200.0)
	if err != nil {
		return "", err
	}
	return runCheckout(cart, customer)
}

func demoRegularProducts() (string, error) {
	cart := domain.NewCart()
	for _, def := range []struct {
		name  string
		stock int
		price float64
	}{
		{"Programming Guide", 200, 39.99},
		{"Photo Editor License", 50, 129.99},
		{"Online Course", 1000, 199.99},
	} {
		p, err := domain.NewProduct(def.name, def.stock, def.price)
		if err != nil {
			return "", err
		}
		if err := cart.AddItem(p, 1); err != nil {
			return "", err
		}
	}

	customer, err := domain.NewCustomer("Alice Smith", 500.0)
	if err != nil {
		return "", err
	}
	return runCheckout(cart, customer)
}

func demoShippableProducts() (string, error) {
	book, err := domain.NewShippableProduct("Physical Book", 30, 29.99, 0.5, 5.99)
	if err != nil {
		return "", err
	}
	headphones, err := domain.NewShippableProduct("Headphones", 15, 199.99, 0.3, 9.99)
	if err != nil {
		return "", err
	}
	shirt, err := domain.NewShippableProduct("T-Shirt", 100, 24.99, 0.2, 7.99)
	if err != nil {
		return "", err
	}

	cart := domain.NewCart()
	if err := cart.AddItem(book, 2); err != nil {
		return "", err
	}
	if err := cart.AddItem(headphones, 1); err != nil {
		return "", err
	}
	if err := cart.AddItem(shirt, 3); err != nil {
		return "", err
	}

	customer, err := domain.NewCustomer("Bob Johnson", 400.0)
	if err != nil {
		return "", err
	}
	return runCheckout(cart, customer)
}

func demoExpirableProducts() (string, error) {
	cart := domain.NewCart()
	for _, def := range []struct {
		name  string
		stock int
		price float64
		days  int
		qty   int
	}{
		{"Fresh Milk", 20, 4.99, 3, 2},
		{"Whole Wheat Bread", 15, 3.49, 5, 1},
		{"Greek Yogurt", 25, 6.99, 10, 3},
	} {
		p, err := domain.NewExpirableProduct(def.name, def.stock, def.price, clock.Now().AddDate(0, 0, def.days), clock)
		if err != nil {
			return "", err
		}
		if err := cart.AddItem(p, def.qty); err != nil {
			return "", err
		}
	}

	customer, err := domain.NewCustomer("Carol Wilson", 100.0)
	if err != nil {
		return "", err
	}
	return runCheckout(cart, customer)
}

func demoExpirableShippableProducts() (string, error) {
	cheese, err := domain.NewExpirableShippableProduct("Aged Cheese", 10, 15.99, clock.Now().AddDate(0, 0, 30), clock, 0.5, 8.99)
	if err != nil {
		return "", err
	}
	beef, err := domain.NewExpirableShippableProduct("Premium Beef", 5, 45.99, clock.Now().AddDate(0, 0, 7), clock, 1.2, 12.99)
	if err != nil {
		return "", err
	}

	cart := domain.NewCart()
	if err := cart.AddItem(cheese, 2); err != nil {
		return "", err
	}
	if err := cart.AddItem(beef, 1); err != nil {
		return "", err
	}

	customer, err := domain.NewCustomer("David Brown", 150.0)
	if err != nil {
		return "", err
	}
	out, err := runCheckout(cart, customer)
	if err != nil {
		return "", err
	}
	out += fmt.Sprintf("\n\nCheese expiry status: %s", freshness(cheese))
	out += fmt.Sprintf("\nBeef expiry status: %s", freshness(beef))
	return out, nil
}

func freshness(e domain.Expirable) string {
	if e.IsExpired() {
		return "Expired"
	}
	return "Fresh"
}

func demoInsufficientBalance() (string, error) {
	console, err := domain.NewShippableProduct("Gaming Console", 3, 599.99, 3.0, 25.99)
	if err != nil {
		return "", err
	}
	controller, err := domain.NewProduct("Controller", 10, 79.99)
	if err != nil {
		return "", err
	}

	cart := domain.NewCart()
	if err := cart.AddItem(console, 1); err != nil {
		return "", err
	}
	if err := cart.AddItem(controller, 2); err != nil {
		return "", err
	}

	customer, err := domain.NewCustomer("Poor Pete", 100.0)
	if err != nil {
		return "", err
	}
	return runCheckout(cart, customer)
}

func demoEmptyCart() (string, error) {
	customer, err := domain.NewCustomer("Empty Buyer", 1000.0)
	if err != nil {
		return "", err
	}
	return runCheckout(domain.NewCart(), customer)
}

func demoLargeOrder() (string, error) {
	pen, err := domain.NewProduct("Ballpoint Pen", 1000, 1.99)
	if err != nil {
		return "", err
	}
	notebook, err := domain.NewShippableProduct("Spiral Notebook", 500, 4.99, 0.3, 2.99)
	if err != nil {
		return "", err
	}
	snack, err := domain.NewExpirableProduct("Energy Bar", 200, 2.49, clock.Now().AddDate(0, 0, 180), clock)
	if err != nil {
		return "", err
	}

	cart := domain.NewCart()
	if err := cart.AddItem(pen, 50); err != nil {
		return "", err
	}
	if err := cart.AddItem(notebook, 20); err != nil {
		return "", err
	}
	if err := cart.AddItem(snack, 15); err != nil {
		return "", err
	}

	customer, err := domain.NewCustomer("Bulk Buyer", 500.0)
	if err != nil {
		return "", err
	}
	return runCheckout(cart, customer)
}

func demoZeroBalanceCustomer() (string, error) {
	// customer construction itself is the expected failure here
	_, err := domain.NewCustomer("Zero Balance", 0.0)
	if err != nil {
		return "", err
	}
	return "", nil
}

func demoExactBalance() (string, error) {
	item, err := domain.NewProduct("Exact Price Item", 5, 45.0)
	if err != nil {
		return "", err
	}
	shipped, err := domain.NewShippableProduct("Shipping Item", 3, 30.0, 1.0, 5.0)
	if err != nil {
		return "", err
	}

	cart := domain.NewCart()
	if err := cart.AddItem(item, 1); err != nil {
		return "", err
	}
	if err := cart.AddItem(shipped, 1); err != nil {
		return "", err
	}

	// 45 + 30 + 5 shipping = exactly 80
	customer, err := domain.NewCustomer("Exact Balance", 80.0)
	if err != nil {
		return "", err
	}
	return runCheckout(cart, customer)
}
