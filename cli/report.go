package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate inventory and sales reports",
	}

	reportCmd.AddCommand(&cobra.Command{
		Use:   "inventory",
		Short: "Inventory report with stock alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter.InventoryReport(os.Stdout, products)
			return nil
		},
	})

	reportCmd.AddCommand(&cobra.Command{
		Use:   "sales",
		Short: "Sales report with per-product totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter.SalesReport(os.Stdout, ledger)
			return nil
		},
	})

	rootCmd.AddCommand(reportCmd)
}
