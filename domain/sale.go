package domain

import (
	"fmt"
	"time"
)

// Sale is an immutable record of one completed transaction. It references
// the sold product by id and keeps a name/price snapshot for display; stock
// reconciliation always re-resolves the product through the inventory, never
// through the snapshot.
type Sale struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	Total       float64   `json:"total"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewSale snapshots the product at the moment of the transaction. The total
// is computed once from the snapshot price and never recomputed, even if the
// product's price changes later.
func NewSale(id int, p *Product, quantity int) *Sale {
	return &Sale{
		ID:          id,
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    quantity,
		Total:       p.Price * float64(quantity),
		Timestamp:   time.Now(),
	}
}

// String renders the stable single-line form used by listings and reports.
func (s *Sale) String() string {
	return fmt.Sprintf("Sale ID: %d | Product: %s | Qty: %d | Total: $%.2f | Date: %s",
		s.ID, s.ProductName, s.Quantity, s.Total, s.Timestamp.Format("2006-01-02 15:04"))
}
