// Package domain defines core business types and validation rules.
package domain

import (
	"fmt"
	"strings"
)

// Product represents a catalog item. Products are owned by the inventory
// manager; callers hold live references but route every mutation through the
// manager so the stock and price invariants hold.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// NewProduct validates id, name, price and stock in that order and returns
// the product with its name trimmed.
func NewProduct(id int, name string, price float64, stock int) (*Product, error) {
	if err := ValidateProductID(id); err != nil {
		return nil, err
	}
	if err := ValidateProductName(name); err != nil {
		return nil, err
	}
	if err := ValidatePrice(price); err != nil {
		return nil, err
	}
	if err := ValidateStock(stock); err != nil {
		return nil, err
	}
	return &Product{ID: id, Name: strings.TrimSpace(name), Price: price, Stock: stock}, nil
}

// UpdateStock applies a signed delta to the stock. It fails without mutating
// when the delta would take the stock below zero.
func (p *Product) UpdateStock(delta int) error {
	if p.Stock+delta < 0 {
		return &InvalidStockError{Stock: p.Stock, Delta: delta}
	}
	p.Stock += delta
	return nil
}

// String renders the stable single-line form used by listings and reports.
func (p *Product) String() string {
	return fmt.Sprintf("ID: %d | Name: %s | Stock: %d | Price: $%.2f", p.ID, p.Name, p.Stock, p.Price)
}

// ProductUpdate carries the optional fields of a product update. A nil field
// is left untouched; a pointer to a zero value is an explicit value, so
// "unset" is never conflated with zero.
type ProductUpdate struct {
	Name  *string
	Price *float64
	Stock *int
}

// Validation rules, shared by the entity constructor and the manager entry
// points so both paths enforce the same invariants.

// ValidateProductID requires a positive integer id.
func ValidateProductID(id int) error {
	if id <= 0 {
		return NewInvalidProductIDError(id)
	}
	return nil
}

// ValidateProductName requires a name that is non-empty after trimming.
func ValidateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewInvalidProductDataError("name cannot be empty")
	}
	return nil
}

// ValidatePrice requires a strictly positive price. The comparison is
// written so that NaN is rejected too.
func ValidatePrice(price float64) error {
	if !(price > 0) {
		return NewInvalidPriceError(price)
	}
	return nil
}

// ValidateStock requires a non-negative stock count.
func ValidateStock(stock int) error {
	if stock < 0 {
		return NewInvalidStockError(stock)
	}
	return nil
}
