// Package report renders plain-text inventory and sales summaries.
package report

import (
	"fmt"
	"io"
	"salestracker/domain"
	"sort"
	"strings"
)

const reportWidth = 70

// InventoryView is the catalog surface the inventory report reads.
// ListProducts is expected to return the catalog in ascending id order.
type InventoryView interface {
	ListProducts() []*domain.Product
	TotalInventoryValue() float64
}

// SalesView is the ledger surface the sales report reads.
type SalesView interface {
	ListSales() []*domain.Sale
	TotalRevenue() float64
	SalesCount() int
}

// Report renders formatted summaries. LowStockThreshold is the stock level
// at or below which a product that still has stock is flagged LOW STOCK.
type Report struct {
	LowStockThreshold int
}

// New constructs a Report with the given low-stock threshold.
func New(lowStockThreshold int) *Report {
	return &Report{LowStockThreshold: lowStockThreshold}
}

// InventoryReport writes the per-product stock status, summary statistics
// and stock alerts for the whole catalog.
func (r *Report) InventoryReport(w io.Writer, inv InventoryView) {
	banner(w, "INVENTORY REPORT")

	products := inv.ListProducts()
	if len(products) == 0 {
		fmt.Fprintln(w, "No products in inventory.")
		return
	}

	var lowStock, outOfStock []*domain.Product
	totalItems := 0
	for _, p := range products {
		status := "In Stock"
		switch {
		case p.Stock == 0:
			status = "OUT OF STOCK"
			outOfStock = append(outOfStock, p)
		case p.Stock <= r.LowStockThreshold:
			status = "LOW STOCK"
			lowStock = append(lowStock, p)
		}
		totalItems += p.Stock
		fmt.Fprintf(w, "%s | Status: %s\n", p, status)
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("-", reportWidth))
	fmt.Fprintln(w, "SUMMARY:")
	fmt.Fprintf(w, "  Total Products: %d\n", len(products))
	fmt.Fprintf(w, "  Total Items in Stock: %d\n", totalItems)
	fmt.Fprintf(w, "  Total Inventory Value: $%.2f\n", inv.TotalInventoryValue())
	fmt.Fprintf(w, "  Low Stock Items (%d or less): %d\n", r.LowStockThreshold, len(lowStock))
	fmt.Fprintf(w, "  Out of Stock Items: %d\n", len(outOfStock))

	if len(lowStock) > 0 {
		fmt.Fprintf(w, "\n  Low Stock Alert: %s\n", joinNames(lowStock))
	}
	if len(outOfStock) > 0 {
		fmt.Fprintf(w, "  Out of Stock Alert: %s\n", joinNames(outOfStock))
	}

	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
}

// SalesReport writes transaction statistics, the top products by quantity
// and by revenue, and a per-product breakdown of the whole ledger.
//
// Aggregation is keyed by product id, so sales survive a product rename;
// each product displays under the name it was last sold as. Ties for the
// top spots go to the lowest product id.
func (r *Report) SalesReport(w io.Writer, ledger SalesView) {
	banner(w, "SALES REPORT")

	sales := ledger.ListSales()
	if len(sales) == 0 {
		fmt.Fprintln(w, "No sales recorded.")
		return
	}

	revenue := ledger.TotalRevenue()
	count := ledger.SalesCount()

	fmt.Fprintf(w, "Total Sales Transactions: %d\n", count)
	fmt.Fprintf(w, "Total Revenue: $%.2f\n", revenue)
	fmt.Fprintf(w, "Average Sale Value: $%.2f\n", revenue/float64(count))

	type productTotals struct {
		name     string
		quantity int
		revenue  float64
	}
	totals := make(map[int]*productTotals)
	var ids []int
	for _, s := range sales {
		t, ok := totals[s.ProductID]
		if !ok {
			t = &productTotals{}
			totals[s.ProductID] = t
			ids = append(ids, s.ProductID)
		}
		t.name = s.ProductName
		t.quantity += s.Quantity
		t.revenue += s.Total
	}
	sort.Ints(ids)

	mostSold, topEarner := ids[0], ids[0]
	for _, id := range ids[1:] {
		if totals[id].quantity > totals[mostSold].quantity {
			mostSold = id
		}
		if totals[id].revenue > totals[topEarner].revenue {
			topEarner = id
		}
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("-", reportWidth))
	fmt.Fprintln(w, "TOP PRODUCTS:")
	fmt.Fprintf(w, "  Most Sold by Quantity: %s (%d units)\n", totals[mostSold].name, totals[mostSold].quantity)
	fmt.Fprintf(w, "  Highest Revenue: %s ($%.2f)\n", totals[topEarner].name, totals[topEarner].revenue)

	fmt.Fprintln(w, "\n"+strings.Repeat("-", reportWidth))
	fmt.Fprintln(w, "SALES BY PRODUCT:")
	for _, id := range ids {
		t := totals[id]
		fmt.Fprintf(w, "  %s: %d units, $%.2f revenue\n", t.name, t.quantity, t.revenue)
	}

	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
}

func banner(w io.Writer, title string) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", reportWidth))
	fmt.Fprintln(w, strings.Repeat(" ", (reportWidth-len(title))/2)+title)
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
}

func joinNames(products []*domain.Product) string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
