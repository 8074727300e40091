package cli

import (
	"encoding/json"
	"salestracker/domain"
	"strings"
	"testing"
)

func TestSellSalesCancelFlow(t *testing.T) {
	defer resetCLI()
	injectManagers()
	if _, err := products.AddProduct(1, "Widget", 9.99, 5); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// SELL
	out, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"sell", "1", "3"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("sell failed: %v", err)
	}

	var sale domain.Sale
	if err := json.Unmarshal([]byte(out), &sale); err != nil {
		t.Fatalf("invalid sell output: %v", err)
	}
	if sale.ID != 1 || sale.ProductID != 1 || sale.Quantity != 3 {
		t.Fatalf("unexpected sale: %+v", sale)
	}
	if p, _ := products.GetProduct(1); p.Stock != 2 {
		t.Fatalf("stock not debited: %d", p.Stock)
	}

	// SALES listing
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"sales"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("sales failed: %v", err)
	}
	if !strings.Contains(out, "Total Sales: 1") || !strings.Contains(out, "Product: Widget |") {
		t.Fatalf("unexpected sales output: %q", out)
	}

	// SALES as JSON
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"sales", "--output", "json"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("sales failed: %v", err)
	}
	var listed []domain.Sale
	if err := json.Unmarshal([]byte(out), &listed); err != nil {
		t.Fatalf("invalid sales output: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != 1 {
		t.Fatalf("unexpected sales listing: %+v", listed)
	}

	// CANCEL
	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"cancel", "--force", "1"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if !strings.Contains(out, "Sale cancelled and stock restored successfully.") {
		t.Fatalf("unexpected cancel output: %q", out)
	}
	if p, _ := products.GetProduct(1); p.Stock != 5 {
		t.Fatalf("stock not restored: %d", p.Stock)
	}
	if ledger.SalesCount() != 0 {
		t.Fatalf("ledger should be empty")
	}
}

func TestSellErrors(t *testing.T) {
	defer resetCLI()
	injectManagers()
	if _, err := products.AddProduct(1, "Widget", 9.99, 2); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	t.Run("non-integer quantity", func(t *testing.T) {
		_, err := captureOutput(func() error {
			rootCmd.SetArgs([]string{"sell", "1", "many"})
			return rootCmd.Execute()
		})
		if err == nil {
			t.Fatal("expected error for non-integer quantity")
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := captureOutput(func() error {
			rootCmd.SetArgs([]string{"sell", "99", "1"})
			return rootCmd.Execute()
		})
		if !domain.IsProductNotFoundError(err) {
			t.Fatalf("expected ProductNotFoundError, got %v", err)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		_, err := captureOutput(func() error {
			rootCmd.SetArgs([]string{"sell", "1", "3"})
			return rootCmd.Execute()
		})
		if !domain.IsOutOfStockError(err) {
			t.Fatalf("expected OutOfStockError, got %v", err)
		}
		if p, _ := products.GetProduct(1); p.Stock != 2 {
			t.Fatalf("stock changed on failed sale: %d", p.Stock)
		}
		if ledger.SalesCount() != 0 {
			t.Fatalf("failed sale must not reach the ledger")
		}
	})
}

func TestCancelConfirmationAborts(t *testing.T) {
	defer resetCLI()
	injectManagers()
	if _, err := products.AddProduct(1, "Widget", 9.99, 5); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := ledger.RecordSale(1, 2, products); err != nil {
		t.Fatalf("seed sale failed: %v", err)
	}

	withStdin(t, "no\n", func() {
		out, err := captureOutput(func() error {
			rootCmd.SetArgs([]string{"cancel", "1"})
			return rootCmd.Execute()
		})
		if err != nil {
			t.Fatalf("cancel failed: %v", err)
		}
		if !strings.Contains(out, "Sale to cancel:") || !strings.Contains(out, "Sale cancellation aborted.") {
			t.Fatalf("unexpected output: %q", out)
		}
	})

	if ledger.SalesCount() != 1 {
		t.Fatalf("sale should remain on the ledger")
	}
	if p, _ := products.GetProduct(1); p.Stock != 3 {
		t.Fatalf("stock should stay debited: %d", p.Stock)
	}
}

func TestCancelWhenProductRemoved(t *testing.T) {
	defer resetCLI()
	injectManagers()
	if _, err := products.AddProduct(1, "Widget", 9.99, 5); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := ledger.RecordSale(1, 2, products); err != nil {
		t.Fatalf("seed sale failed: %v", err)
	}
	if err := products.RemoveProduct(1); err != nil {
		t.Fatalf("seed remove failed: %v", err)
	}

	out, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"cancel", "--force", "1"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("cancel should succeed for the ledger side: %v", err)
	}
	if !strings.Contains(out, "Sale cancelled.") {
		t.Fatalf("unexpected output: %q", out)
	}
	if ledger.SalesCount() != 0 {
		t.Fatalf("sale should be removed from the ledger")
	}
}

func TestReportCommands(t *testing.T) {
	defer resetCLI()
	injectManagers()
	if _, err := products.AddProduct(1, "Widget", 10, 2); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	out, err := captureOutput(func() error {
		rootCmd.SetArgs([]string{"report", "inventory"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("inventory report failed: %v", err)
	}
	if !strings.Contains(out, "INVENTORY REPORT") || !strings.Contains(out, "Total Inventory Value: $20.00") {
		t.Fatalf("unexpected report output: %q", out)
	}

	out, err = captureOutput(func() error {
		rootCmd.SetArgs([]string{"report", "sales"})
		return rootCmd.Execute()
	})
	if err != nil {
		t.Fatalf("sales report failed: %v", err)
	}
	if !strings.Contains(out, "No sales recorded.") {
		t.Fatalf("unexpected report output: %q", out)
	}
}
