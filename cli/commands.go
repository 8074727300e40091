// Package cli provides the Cobra-based CLI for salestracker.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"salestracker/domain"
	"salestracker/inventory"
	"salestracker/report"
	"salestracker/sales"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:   "salestracker",
		Short: "An inventory and sales tracking system",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject managers
			if products != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
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

			products = inventory.NewManager()
			ledger = sales.NewManager()
			reporter = report.New(viper.GetInt("low-stock-threshold"))

			slog.Info("session started", "session_id", uuid.NewString())
			return nil
		},
	}

	products *inventory.Manager
	ledger   *sales.Manager
	reporter *report.Report
)

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("salestracker> ")
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
				rootCmd.SetArgs(splitArgs(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
				resetFlags(rootCmd)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().Int("low-stock-threshold", 10, "low stock threshold for reports")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("low-stock-threshold", rootCmd.PersistentFlags().Lookup("low-stock-threshold"))
	viper.SetEnvPrefix("SALESTRACKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// add
	var addID, addStock int
	var addName string
	var addPrice float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			p, err := products.AddProduct(addID, addName, addPrice, addStock)
			if err != nil {
				slog.Error("add failed", "product_id", addID, "error", err)
				return err
			}
			slog.Info("product added", "product_id", p.ID, "duration_ms", time.Since(start).Milliseconds())
			b, _ := json.MarshalIndent(p, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	addCmd.Flags().IntVar(&addID, "id", 0, "product id")
	addCmd.Flags().StringVar(&addName, "name", "", "name")
	addCmd.Flags().Float64Var(&addPrice, "price", 0, "price")
	addCmd.Flags().IntVar(&addStock, "stock", 0, "initial stock")
	rootCmd.AddCommand(addCmd)

	// update
	var uName string
	var uPrice float64
	var uStock int
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}

			var upd domain.ProductUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &uName
			}
			if cmd.Flags().Changed("price") {
				upd.Price = &uPrice
			}
			if cmd.Flags().Changed("stock") {
				upd.Stock = &uStock
			}

			start := time.Now()
			p, err := products.UpdateProduct(id, upd)
			if err != nil {
				slog.Error("update failed", "product_id", id, "error", err)
				return err
			}

			slog.Info(
				"product updated",
				"product_id", id,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			b, _ := json.MarshalIndent(p, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	updateCmd.Flags().StringVar(&uName, "name", "", "name")
	updateCmd.Flags().Float64Var(&uPrice, "price", 0, "price")
	updateCmd.Flags().IntVar(&uStock, "stock", 0, "stock")
	rootCmd.AddCommand(updateCmd)

	// remove
	var force bool
	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a product from the inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}
			p, err := products.GetProduct(id)
			if err != nil {
				return err
			}
			if !force {
				fmt.Printf("Product to delete: %s\n", p)
				if !confirm("Are you sure you want to delete this product? (yes/no): ") {
					fmt.Println("Product deletion cancelled.")
					return nil
				}
			}
			if err := products.RemoveProduct(id); err != nil {
				return err
			}
			slog.Info("product removed", "product_id", id)
			fmt.Println("Product removed successfully.")
			return nil
		},
	}
	removeCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	rootCmd.AddCommand(removeCmd)

	// list
	var listOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := products.ListProducts()
			if listOutput == "json" {
				b, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			if len(out) == 0 {
				fmt.Println("No products in inventory.")
				return nil
			}
			fmt.Printf("\nTotal Products: %d\n", len(out))
			for _, p := range out {
				fmt.Println(p)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&listOutput, "output", "", "output format")
	rootCmd.AddCommand(listCmd)

	// search
	searchCmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search products by name or id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := products.SearchProducts(args[0])
			if len(results) == 0 {
				fmt.Println("No products found matching your search.")
				return nil
			}
			printFound(results, "")
			return nil
		},
	}
	rootCmd.AddCommand(searchCmd)

	// filter
	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter products by price or stock level",
	}

	var minPrice, maxPrice float64
	filterPriceCmd := &cobra.Command{
		Use:   "price",
		Short: "Filter products by price range",
		RunE: func(cmd *cobra.Command, args []string) error {
			var minPtr, maxPtr *float64
			if cmd.Flags().Changed("min") {
				minPtr = &minPrice
			}
			if cmd.Flags().Changed("max") {
				maxPtr = &maxPrice
			}
			results := products.FilterByPriceRange(minPtr, maxPtr)
			if len(results) == 0 {
				fmt.Println("No products found in the specified price range.")
				return nil
			}
			printFound(results, "")
			return nil
		},
	}
	filterPriceCmd.Flags().Float64Var(&minPrice, "min", 0, "minimum price")
	filterPriceCmd.Flags().Float64Var(&maxPrice, "max", 0, "maximum price")
	filterCmd.AddCommand(filterPriceCmd)

	var stockThreshold int
	var inStock bool
	filterStockCmd := &cobra.Command{
		Use:   "stock",
		Short: "Filter products by stock level",
		RunE: func(cmd *cobra.Command, args []string) error {
			lowStock := !inStock
			status := "low stock"
			if !lowStock {
				status = "adequate stock"
			}
			results := products.FilterByStockLevel(stockThreshold, lowStock)
			if len(results) == 0 {
				fmt.Printf("No products found with %s.\n", status)
				return nil
			}
			printFound(results, status)
			return nil
		},
	}
	filterStockCmd.Flags().IntVar(&stockThreshold, "threshold", 10, "stock threshold")
	filterStockCmd.Flags().BoolVar(&inStock, "in-stock", false, "show products above the threshold instead")
	filterCmd.AddCommand(filterStockCmd)
	rootCmd.AddCommand(filterCmd)
}

// parseID converts a positional argument to an int, naming the argument in
// the error so shell users see which value was rejected.
func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not an integer", what, arg)
	}
	return id, nil
}

// confirm prompts on stdout and reads one token from stdin. Anything other
// than yes/y (case-insensitive) declines.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	var resp string
	if _, err := fmt.Scanln(&resp); err != nil {
		return false
	}
	resp = strings.ToLower(strings.TrimSpace(resp))
	return resp == "yes" || resp == "y"
}

func printFound(results []*domain.Product, qualifier string) {
	if qualifier == "" {
		fmt.Printf("\nFound %d product(s):\n", len(results))
	} else {
		fmt.Printf("\nFound %d product(s) with %s:\n", len(results), qualifier)
	}
	for _, p := range results {
		fmt.Println(p)
	}
}

// resetFlags restores changed flags to their defaults on every command.
// Cobra keeps flag values and Changed bits across Execute calls, which would
// leak one shell dispatch's flags into the next.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// splitArgs splits a shell line on whitespace, honoring single and double
// quotes so product names with spaces survive.
func splitArgs(line string) []string {
	var args []string
	var cur strings.Builder
	var quote rune
	inArg := false
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args
}

func Execute() error {
	return rootCmd.Execute()
}
