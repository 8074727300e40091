// Package inventory provides the manager that owns the product catalog.
package inventory

import (
	"salestracker/domain"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Manager owns the id→product map and enforces the catalog invariants:
// ids are unique, every key equals its product's ID, and stored products
// only change through Manager operations. A mutex serializes mutations so
// the validate-all-then-mutate and check-then-adjust sequences stay atomic
// even if callers ever go concurrent.
type Manager struct {
	mu       sync.RWMutex
	products map[int]*domain.Product
}

// NewManager constructs an empty catalog.
func NewManager() *Manager {
	return &Manager{
		products: make(map[int]*domain.Product),
	}
}

// AddProduct validates the id, then uniqueness, then builds the product
// (which re-checks name, price and stock) and inserts it. The stored product
// is returned.
func (m *Manager) AddProduct(id int, name string, price float64, stock int) (*domain.Product, error) {
	if err := domain.ValidateProductID(id); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[id]; exists {
		return nil, domain.NewProductAlreadyExistsError(id)
	}
	p, err := domain.NewProduct(id, name, price, stock)
	if err != nil {
		return nil, err
	}
	m.products[id] = p
	return p, nil
}

// UpdateProduct applies the provided fields to an existing product. Every
// provided field is validated before any field is written, so a failed
// update leaves the product exactly as it was.
func (m *Manager) UpdateProduct(id int, upd domain.ProductUpdate) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, domain.NewProductNotFoundError(id)
	}

	if upd.Name != nil {
		if err := domain.ValidateProductName(*upd.Name); err != nil {
			return nil, err
		}
	}
	if upd.Price != nil {
		if err := domain.ValidatePrice(*upd.Price); err != nil {
			return nil, err
		}
	}
	if upd.Stock != nil {
		if err := domain.ValidateStock(*upd.Stock); err != nil {
			return nil, err
		}
	}

	if upd.Name != nil {
		p.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	return p, nil
}

// RemoveProduct deletes a product from the catalog.
func (m *Manager) RemoveProduct(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return domain.NewProductNotFoundError(id)
	}
	delete(m.products, id)
	return nil
}

// GetProduct returns the stored product. Callers get the live reference,
// not a copy, and observe later catalog mutations through it.
func (m *Manager) GetProduct(id int) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[id]
	if !ok {
		return nil, domain.NewProductNotFoundError(id)
	}
	return p, nil
}

// AdjustStock re-resolves the product by id and applies a signed stock
// delta through the product's own stock operation. This is the mutation
// path sales coordination uses, so a held reference is never trusted for
// writes.
func (m *Manager) AdjustStock(id, delta int) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, domain.NewProductNotFoundError(id)
	}
	if err := p.UpdateStock(delta); err != nil {
		return nil, err
	}
	return p, nil
}

// SearchProducts matches by id or name. A term made of digits is first
// tried as an exact id; a hit short-circuits the name matching entirely.
// Otherwise the trimmed term matches case-insensitively as a substring of
// the product name. An empty term matches everything; no match is an empty
// result, never an error.
func (m *Manager) SearchProducts(term string) []*domain.Product {
	term = strings.ToLower(strings.TrimSpace(term))

	m.mu.RLock()
	defer m.mu.RUnlock()

	if isDigits(term) {
		// Atoi only fails here on overflow; treat that as no id match.
		if id, err := strconv.Atoi(term); err == nil {
			if p, ok := m.products[id]; ok {
				return []*domain.Product{p}
			}
		}
	}

	out := make([]*domain.Product, 0)
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return sortByID(out)
}

// FilterByPriceRange returns products with min <= price <= max. Bounds are
// inclusive and a nil bound is unbounded.
func (m *Manager) FilterByPriceRange(min, max *float64) []*domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Product, 0)
	for _, p := range m.products {
		if min != nil && p.Price < *min {
			continue
		}
		if max != nil && p.Price > *max {
			continue
		}
		out = append(out, p)
	}
	return sortByID(out)
}

// FilterByStockLevel returns products with stock <= threshold when lowStock
// is true, and products with stock > threshold otherwise.
func (m *Manager) FilterByStockLevel(threshold int, lowStock bool) []*domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Product, 0)
	for _, p := range m.products {
		if lowStock && p.Stock <= threshold {
			out = append(out, p)
		}
		if !lowStock && p.Stock > threshold {
			out = append(out, p)
		}
	}
	return sortByID(out)
}

// TotalInventoryValue sums price times stock over the whole catalog.
func (m *Manager) TotalInventoryValue() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0.0
	for _, p := range m.products {
		total += p.Price * float64(p.Stock)
	}
	return total
}

// ListProducts returns every product ordered by ascending id.
func (m *Manager) ListProducts() []*domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return sortByID(out)
}

// sortByID keeps every query result in ascending id order so output and
// aggregate tie-breaking stay deterministic.
func sortByID(products []*domain.Product) []*domain.Product {
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
