// Package cli provides the Cobra-based CLI for checkout-cli.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ecommerce_checkout/checkout"
	"ecommerce_checkout/domain"
	"ecommerce_checkout/store"
)

var (
	rootCmd = &cobra.Command{
		Use:   "checkout-cli",
		Short: "A retail checkout system: catalog, cart and receipts",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cart == nil {
				cart = domain.NewCart()
			}
			// IMPORTANT: allow tests to inject catalog
			if catalog != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return errors.Wrap(err, "read config")
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			var err error
			catalog, err = store.NewCatalog(
				viper.GetString("catalog"),
				viper.GetString("catalog-file"),
				clock,
			)
			return err
		},
	}

	catalog store.Catalog
	cart    *domain.Cart
	clock   = domain.SystemClock()
)

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		Long:  "Interactive shell mode. The cart survives between commands here, so add items and check out in one session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("checkout> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("catalog", "memory", "catalog backend: memory|file")
	rootCmd.PersistentFlags().String("catalog-file", "data/catalog.json", "catalog seed file path")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("catalog-file", rootCmd.PersistentFlags().Lookup("catalog-file"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("CHECKOUT")
	viper.AutomaticEnv()

	// product
	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the product catalog",
	}
	rootCmd.AddCommand(productCmd)

	// product add
	var name, kind string
	var price, weight, shippingFees float64
	var quantity, expiryDays int
	productAddCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			p, err := buildProduct(kind, name, quantity, price, expiryDays, weight, shippingFees)
			if err != nil {
				return err
			}
			if err := catalog.Add(context.Background(), p); err != nil {
				slog.Error("product add failed", "product", name, "error", err)
				return err
			}
			slog.Info("product added",
				"product", p.Name(),
				"type", kind,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			b, _ := json.MarshalIndent(store.RecordOf(p), "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	productAddCmd.Flags().StringVar(&name, "name", "", "name")
	productAddCmd.Flags().Float64Var(&price, "price", 0, "unit price")
	productAddCmd.Flags().IntVar(&quantity, "quantity", 0, "available stock")
	productAddCmd.Flags().StringVar(&kind, "type", "", "product type: \"\"|expirable|shippable|expirable_shippable")
	productAddCmd.Flags().IntVar(&expiryDays, "expiry-days", 0, "days until expiry (expirable types)")
	productAddCmd.Flags().Float64Var(&weight, "weight", 0, "unit weight in kg (shippable types)")
	productAddCmd.Flags().Float64Var(&shippingFees, "shipping-fees", 0, "unit shipping fee (shippable types)")
	productCmd.AddCommand(productAddCmd)

	// product list
	var listOutput string
	productListCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := catalog.List(context.Background())
			if err != nil {
				return err
			}
			if listOutput == "json" {
				records := make([]store.ProductRecord, 0, len(products))
				for _, p := range products {
					records = append(records, store.RecordOf(p))
				}
				b, _ := json.MarshalIndent(records, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, p := range products {
				status := ""
				if e, ok := p.(domain.Expirable); ok && e.IsExpired() {
					status = " | expired"
				}
				fmt.Printf("%s | %.2f | %d%s\n", p.Name(), p.Price(), p.Quantity(), status)
			}
			return nil
		},
	}
	productListCmd.Flags().StringVar(&listOutput, "output", "", "output format")
	productCmd.AddCommand(productListCmd)

	// cart
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}
	rootCmd.AddCommand(cartCmd)

	// cart add
	var cartProduct string
	var cartQuantity int
	cartAddCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog product to the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := catalog.Get(context.Background(), cartProduct)
			if err != nil {
				return err
			}
			if err := cart.AddItem(p, cartQuantity); err != nil {
				slog.Error("cart add failed", "product", cartProduct, "quantity", cartQuantity, "error", err)
				return err
			}
			slog.Info("item added to cart",
				"product", p.Name(),
				"quantity", cartQuantity,
				"cart_total", cart.TotalPrice(),
			)
			fmt.Printf("%dx %s added (cart total %.2f)\n", cartQuantity, p.Name(), cart.TotalPrice())
			return nil
		},
	}
	cartAddCmd.Flags().StringVar(&cartProduct, "product", "", "product name")
	cartAddCmd.Flags().IntVar(&cartQuantity, "quantity", 1, "quantity to purchase")
	cartCmd.AddCommand(cartAddCmd)

	// cart show
	cartShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show cart lines and running total",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cart.IsEmpty() {
				fmt.Println("cart is empty")
				return nil
			}
			for _, l := range cart.Items() {
				fmt.Printf("%dx %-12s %.2f\n", l.Quantity, l.Product.Name(), l.Product.Price()*float64(l.Quantity))
			}
			fmt.Printf("Total %.2f\n", cart.TotalPrice())
			return nil
		},
	}
	cartCmd.AddCommand(cartShowCmd)

	// checkout
	var customerName string
	var balance float64
	checkoutCmd := &cobra.Command{
		Use:   "checkout",
		Short: "Check out the cart and print the receipt",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			customer, err := domain.NewCustomer(customerName, balance)
			if err != nil {
				return err
			}
			shipping, err := checkout.NewShippingService(cart.Items())
			if err != nil {
				return err
			}
			svc, err := checkout.NewCheckoutService(cart, customer, shipping)
			if err != nil {
				slog.Error("checkout rejected", "customer", customer.Name(), "error", err)
				return err
			}
			fmt.Println(svc.GenerateReceipt())
			slog.Info("checkout complete",
				"order_id", uuid.NewString(),
				"customer", customer.Name(),
				"amount", cart.TotalPrice()+shipping.TotalShippingFees(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
			// start a fresh cart for the next purchase
			cart = domain.NewCart()
			return nil
		},
	}
	checkoutCmd.Flags().StringVar(&customerName, "name", "", "customer name")
	checkoutCmd.Flags().Float64Var(&balance, "balance", 0, "customer balance")
	rootCmd.AddCommand(checkoutCmd)

	// import
	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Import catalog products from a JSON seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}
			products, err := store.LoadCatalogFile(importFile, clock)
			if err != nil {
				return err
			}
			for _, p := range products {
				if err := catalog.Add(context.Background(), p); err != nil {
					return err
				}
			}
			slog.Info("catalog imported", "file", importFile, "products", len(products))
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	rootCmd.AddCommand(importCmd)

	// export
	var exportFile string
	exportCmd := &cobra.Command{
		Use:   "export --file <file>",
		Short: "Export the catalog to a JSON seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFile == "" {
				return errors.New("--file required")
			}
			products, err := catalog.List(context.Background())
			if err != nil {
				return err
			}
			return store.WriteCatalogFile(exportFile, products)
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file")
	rootCmd.AddCommand(exportCmd)
}

// buildProduct constructs the right product variant for the --type flag.
// Expirable variants get their expiry from the injected clock plus
// expiryDays.
func buildProduct(kind, name string, quantity int, price float64, expiryDays int, weight, shippingFees float64) (domain.Sellable, error) {
	switch kind {
	case store.TypeRegular:
		return domain.NewProduct(name, quantity, price)
	case store.TypeExpirable:
		return domain.NewExpirableProduct(name, quantity, price, clock.Now().AddDate(0, 0, expiryDays), clock)
	case store.TypeShippable:
		return domain.NewShippableProduct(name, quantity, price, weight, shippingFees)
	case store.TypeExpirableShippable:
		return domain.NewExpirableShippableProduct(name, quantity, price, clock.Now().AddDate(0, 0, expiryDays), clock, weight, shippingFees)
	default:
		return nil, fmt.Errorf("unknown product type: %s", kind)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
