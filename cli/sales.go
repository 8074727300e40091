package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"salestracker/domain"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	// sell
	sellCmd := &cobra.Command{
		Use:   "sell <product-id> <quantity>",
		Short: "Record a sale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}
			quantity, err := parseID(args[1], "quantity")
			if err != nil {
				return err
			}

			start := time.Now()
			sale, err := ledger.RecordSale(productID, quantity, products)
			if err != nil {
				slog.Error("sale failed", "product_id", productID, "quantity", quantity, "error", err)
				return err
			}
			slog.Info(
				"sale recorded",
				"sale_id", sale.ID,
				"product_id", productID,
				"quantity", quantity,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			b, _ := json.MarshalIndent(sale, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	rootCmd.AddCommand(sellCmd)

	// sales
	var salesOutput string
	salesCmd := &cobra.Command{
		Use:   "sales",
		Short: "List recorded sales",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := ledger.ListSales()
			if salesOutput == "json" {
				b, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			if len(out) == 0 {
				fmt.Println("No sales recorded.")
				return nil
			}
			fmt.Printf("\nTotal Sales: %d\n", len(out))
			for _, s := range out {
				fmt.Println(s)
			}
			return nil
		},
	}
	salesCmd.Flags().StringVar(&salesOutput, "output", "", "output format")
	rootCmd.AddCommand(salesCmd)

	// cancel
	var cancelForce bool
	cancelCmd := &cobra.Command{
		Use:   "cancel <sale-id>",
		Short: "Cancel a sale and restore its stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saleID, err := parseID(args[0], "sale id")
			if err != nil {
				return err
			}
			sale, err := ledger.GetSale(saleID)
			if err != nil {
				return err
			}
			if !cancelForce {
				fmt.Printf("Sale to cancel: %s\n", sale)
				if !confirm("Are you sure you want to cancel this sale? (yes/no): ") {
					fmt.Println("Sale cancellation aborted.")
					return nil
				}
			}

			err = ledger.CancelSale(saleID, products)
			if domain.IsProductNotFoundError(err) {
				// the cancellation stands; only the restock failed
				fmt.Fprintln(os.Stderr, err)
				slog.Warn("sale cancelled without restock", "sale_id", saleID, "product_id", sale.ProductID)
				fmt.Println("Sale cancelled.")
				return nil
			}
			if err != nil {
				return err
			}
			slog.Info("sale cancelled", "sale_id", saleID, "product_id", sale.ProductID, "quantity", sale.Quantity)
			fmt.Println("Sale cancelled and stock restored successfully.")
			return nil
		},
	}
	cancelCmd.Flags().BoolVar(&cancelForce, "force", false, "skip confirmation")
	rootCmd.AddCommand(cancelCmd)
}
