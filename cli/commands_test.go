package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"ecommerce_checkout/domain"
	"ecommerce_checkout/store"
)

// capture stdout during cobra execution
func captureOutput(f func() error) (string, error) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), err
}

// reset cobra + global state between tests
func resetCLI() {
	rootCmd.SetArgs(nil)
	catalog = nil
	cart = nil
}

func TestProductCartCheckoutFlow(t *testing.T) {
	defer resetCLI()
	catalog = store.NewMemoryCatalog()
	cart = domain.NewCart()

	// add a plain product
	out, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{
			"product", "add",
			"--name", "Pen",
			"--price", "2.0",
			"--quantity", "100",
		})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("product add failed: %v", err)
	}

	var rec store.ProductRecord
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("invalid product add output: %v", err)
	}
	if rec.Name != "Pen" || rec.Quantity != 100 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	// add a shippable product
	_, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{
			"product", "add",
			"--name", "Box",
			"--price", "10.0",
			"--quantity", "5",
			"--type", "shippable",
			"--weight", "1.5",
			"--shipping-fees", "3.0",
		})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("shippable product add failed: %v", err)
	}

	// list as json
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"product", "list", "--output", "json"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("product list failed: %v", err)
	}
	var records []store.ProductRecord
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("invalid list output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 products, got %d", len(records))
	}

	// fill the cart
	_, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"cart", "add", "--product", "Pen", "--quantity", "10"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("cart add failed: %v", err)
	}
	_, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"cart", "add", "--product", "Box", "--quantity", "2"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("cart add failed: %v", err)
	}

	// show
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"cart", "show"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("cart show failed: %v", err)
	}
	if !strings.Contains(out, "Total 40.00") {
		t.Fatalf("expected running total in cart show, got:\n%s", out)
	}

	// checkout
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"checkout", "--name", "John Doe", "--balance", "100"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	for _, want := range []string{
		"** Shipment notice **",
		"Total package weight 3.0kg",
		"** Checkout receipt **",
		"Amount       46",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("receipt missing %q, got:\n%s", want, out)
		}
	}

	// the cart is fresh after checkout, but catalog stock stays reduced
	if !cart.IsEmpty() {
		t.Fatal("expected a fresh cart after successful checkout")
	}
	p, err := catalog.Get(context.Background(), "Pen")
	if err != nil {
		t.Fatalf("catalog get failed: %v", err)
	}
	if p.Quantity() != 90 {
		t.Fatalf("expected remaining stock 90, got %d", p.Quantity())
	}
}

func TestDemoCommand(t *testing.T) {
	defer resetCLI()
	catalog = store.NewMemoryCatalog()
	cart = domain.NewCart()

	out, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"demo"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}

	// success scenarios print receipts, failure scenarios print the reason
	for _, want := range []string{
		"--- Successful mixed products checkout ---",
		"** Checkout receipt **",
		"--- Insufficient customer balance ---",
		"insufficient balance",
		"--- Empty cart ---",
		"invalid shipping input: items cannot be empty",
		"--- Zero balance customer ---",
		"invalid customer",
		"--- Exact balance ---",
		"Amount       80",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("demo output missing %q", want)
		}
	}
}

func TestImportExport(t *testing.T) {
	defer resetCLI()
	catalog = store.NewMemoryCatalog()
	cart = domain.NewCart()

	seed := `[
  {"name": "Pen", "quantity": 100, "price": 2.0},
  {"name": "Box", "quantity": 5, "price": 10.0, "type": "shippable", "weight": 1.5, "shipping_fees": 3.0}
]`
	tmp, err := os.CreateTemp("", "catalog_*.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(seed); err != nil {
		t.Fatal(err)
	}
	tmp.Close()

	_, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"import", "--file", tmp.Name()})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	products, err := catalog.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 imported products, got %d", len(products))
	}

	exportPath := tmp.Name() + ".out"
	defer os.Remove(exportPath)
	_, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"export", "--file", exportPath})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	back, err := store.LoadCatalogFile(exportPath, clock)
	if err != nil {
		t.Fatalf("reading exported catalog failed: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("expected 2 exported products, got %d", len(back))
	}
}
