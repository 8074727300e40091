// Package domain defines error types for the inventory and sales system.
package domain

import (
	"errors"
	"fmt"
)

// ProductNotFoundError is returned when a product with the given ID is not
// in the inventory. Detail, when set, carries advisory context (for example
// a cancelled sale whose stock could not be restored).
type ProductNotFoundError struct {
	ID     int
	Detail string
}

func (e *ProductNotFoundError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("product not found: id=%d: %s", e.ID, e.Detail)
	}
	return fmt.Sprintf("product not found: id=%d", e.ID)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// ProductAlreadyExistsError is returned when adding a product with an ID
// that is already taken.
type ProductAlreadyExistsError struct {
	ID int
}

func (e *ProductAlreadyExistsError) Error() string {
	return fmt.Sprintf("product already exists: id=%d", e.ID)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductAlreadyExistsError) Is(target error) bool {
	_, ok := target.(*ProductAlreadyExistsError)
	return ok
}

// SaleNotFoundError is returned when a sale with the given ID is not in the
// ledger.
type SaleNotFoundError struct {
	ID int
}

func (e *SaleNotFoundError) Error() string {
	return fmt.Sprintf("sale not found: id=%d", e.ID)
}

// Is allows proper error type checking with errors.Is()
func (e *SaleNotFoundError) Is(target error) bool {
	_, ok := target.(*SaleNotFoundError)
	return ok
}

// InvalidProductIDError is returned when a product ID is not a positive
// integer.
type InvalidProductIDError struct {
	ID int
}

func (e *InvalidProductIDError) Error() string {
	return fmt.Sprintf("invalid product id: must be a positive integer, got=%d", e.ID)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidProductIDError) Is(target error) bool {
	_, ok := target.(*InvalidProductIDError)
	return ok
}

// InvalidProductDataError is returned when product data outside the id,
// price and stock rules is invalid (for example an empty name).
type InvalidProductDataError struct {
	Reason string
}

func (e *InvalidProductDataError) Error() string {
	return fmt.Sprintf("invalid product data: %s", e.Reason)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidProductDataError) Is(target error) bool {
	_, ok := target.(*InvalidProductDataError)
	return ok
}

// InvalidPriceError is returned when a product price is not strictly
// positive.
type InvalidPriceError struct {
	Price float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price: must be positive, got=%v", e.Price)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidPriceError) Is(target error) bool {
	_, ok := target.(*InvalidPriceError)
	return ok
}

// InvalidStockError is returned when a stock value is negative, or when a
// stock adjustment would take the stock below zero. Delta is non-zero only
// in the adjustment case.
type InvalidStockError struct {
	Stock int
	Delta int
}

func (e *InvalidStockError) Error() string {
	if e.Delta != 0 {
		return fmt.Sprintf("invalid stock: cannot reduce below zero, current=%d delta=%d", e.Stock, e.Delta)
	}
	return fmt.Sprintf("invalid stock: must be non-negative, got=%d", e.Stock)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidStockError) Is(target error) bool {
	_, ok := target.(*InvalidStockError)
	return ok
}

// InvalidQuantityError is returned when a sale quantity is not a positive
// integer.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity: must be a positive integer, got=%d", e.Quantity)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidQuantityError) Is(target error) bool {
	_, ok := target.(*InvalidQuantityError)
	return ok
}

// OutOfStockError is returned when a sale asks for more units than the
// product has on hand.
type OutOfStockError struct {
	ProductID int
	Name      string
	Available int
	Requested int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: available=%d, requested=%d", e.Name, e.Available, e.Requested)
}

// Is allows proper error type checking with errors.Is()
func (e *OutOfStockError) Is(target error) bool {
	_, ok := target.(*OutOfStockError)
	return ok
}

// Helper functions for creating errors with context

// NewProductNotFoundError creates a ProductNotFoundError without advisory
// detail.
func NewProductNotFoundError(id int) error {
	return &ProductNotFoundError{ID: id}
}

// NewProductAlreadyExistsError creates a new ProductAlreadyExistsError
func NewProductAlreadyExistsError(id int) error {
	return &ProductAlreadyExistsError{ID: id}
}

// NewSaleNotFoundError creates a new SaleNotFoundError
func NewSaleNotFoundError(id int) error {
	return &SaleNotFoundError{ID: id}
}

// NewInvalidProductIDError creates a new InvalidProductIDError
func NewInvalidProductIDError(id int) error {
	return &InvalidProductIDError{ID: id}
}

// NewInvalidProductDataError creates a new InvalidProductDataError
func NewInvalidProductDataError(reason string) error {
	return &InvalidProductDataError{Reason: reason}
}

// NewInvalidPriceError creates a new InvalidPriceError
func NewInvalidPriceError(price float64) error {
	return &InvalidPriceError{Price: price}
}

// NewInvalidStockError creates an InvalidStockError for an absolute stock
// value; adjustment failures carry Delta and are built at the call site.
func NewInvalidStockError(stock int) error {
	return &InvalidStockError{Stock: stock}
}

// NewInvalidQuantityError creates a new InvalidQuantityError
func NewInvalidQuantityError(quantity int) error {
	return &InvalidQuantityError{Quantity: quantity}
}

// Type assertion helpers for use with errors.As()

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var pnf *ProductNotFoundError
	return errors.As(err, &pnf)
}

// IsProductAlreadyExistsError checks if an error is a ProductAlreadyExistsError
func IsProductAlreadyExistsError(err error) bool {
	var pae *ProductAlreadyExistsError
	return errors.As(err, &pae)
}

// IsSaleNotFoundError checks if an error is a SaleNotFoundError
func IsSaleNotFoundError(err error) bool {
	var snf *SaleNotFoundError
	return errors.As(err, &snf)
}

// IsInvalidStockError checks if an error is an InvalidStockError
func IsInvalidStockError(err error) bool {
	var ise *InvalidStockError
	return errors.As(err, &ise)
}

// IsOutOfStockError checks if an error is an OutOfStockError
func IsOutOfStockError(err error) bool {
	var oos *OutOfStockError
	return errors.As(err, &oos)
}
