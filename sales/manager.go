// Package sales provides the manager that owns the sales ledger.
package sales

import (
	"fmt"
	"salestracker/domain"
	"sync"
)

// Inventory is the catalog surface sales operations need: resolving a
// product for the availability check and moving stock through the catalog's
// own mutation path. Coordination is caller-directed, so both operations
// take the collaborator as an argument instead of holding one.
type Inventory interface {
	GetProduct(id int) (*domain.Product, error)
	AdjustStock(id, delta int) (*domain.Product, error)
}

// Manager owns the chronological ledger of sales and the id counter. Sale
// ids start at 1, only ever grow, and are never reissued: cancelling a sale
// retires its id for good. A mutex serializes mutations so the
// check-stock-then-debit-then-append sequence stays atomic to callers.
type Manager struct {
	mu     sync.RWMutex
	sales  []*domain.Sale
	nextID int
}

// NewManager constructs an empty ledger.
func NewManager() *Manager {
	return &Manager{nextID: 1}
}

// RecordSale debits quantity units of a product and appends the resulting
// sale to the ledger. The quantity must be positive, the product must exist
// and it must have at least quantity units on hand; any violation fails
// before anything is mutated.
func (m *Manager) RecordSale(productID, quantity int, inv Inventory) (*domain.Sale, error) {
	if quantity < 1 {
		return nil, domain.NewInvalidQuantityError(quantity)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := inv.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	if p.Stock < quantity {
		return nil, &domain.OutOfStockError{
			ProductID: p.ID,
			Name:      p.Name,
			Available: p.Stock,
			Requested: quantity,
		}
	}

	if _, err := inv.AdjustStock(productID, -quantity); err != nil {
		return nil, err
	}

	sale := domain.NewSale(m.nextID, p, quantity)
	m.nextID++
	m.sales = append(m.sales, sale)
	return sale, nil
}

// CancelSale reverses a sale: the sold quantity is restored to the current
// product with that id and the sale leaves the ledger. When the product has
// since been removed from the inventory the sale is removed anyway, and a
// ProductNotFoundError reports that the stock side could not be reconciled.
func (m *Manager) CancelSale(saleID int, inv Inventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(saleID)
	if idx < 0 {
		return domain.NewSaleNotFoundError(saleID)
	}
	sale := m.sales[idx]

	_, err := inv.AdjustStock(sale.ProductID, sale.Quantity)
	if err != nil && !domain.IsProductNotFoundError(err) {
		return err
	}

	m.sales = append(m.sales[:idx], m.sales[idx+1:]...)

	if err != nil {
		return &domain.ProductNotFoundError{
			ID:     sale.ProductID,
			Detail: fmt.Sprintf("sale %d cancelled but stock for %q was not restored", sale.ID, sale.ProductName),
		}
	}
	return nil
}

// GetSale looks a sale up by id.
func (m *Manager) GetSale(saleID int) (*domain.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if idx := m.indexOf(saleID); idx >= 0 {
		return m.sales[idx], nil
	}
	return nil, domain.NewSaleNotFoundError(saleID)
}

// TotalRevenue sums the totals of every sale currently on the ledger.
func (m *Manager) TotalRevenue() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0.0
	for _, s := range m.sales {
		total += s.Total
	}
	return total
}

// SalesCount returns the number of sales on the ledger.
func (m *Manager) SalesCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sales)
}

// ListSales returns the ledger in chronological (insertion) order.
func (m *Manager) ListSales() []*domain.Sale {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Sale, len(m.sales))
	copy(out, m.sales)
	return out
}

// indexOf scans the ledger for a sale id. Callers hold the lock.
func (m *Manager) indexOf(saleID int) int {
	for i, s := range m.sales {
		if s.ID == saleID {
			return i
		}
	}
	return -1
}
