package domain

import (
	"math"
	"testing"
	"time"
)

func TestNewSaleSnapshot(t *testing.T) {
	p := &Product{ID: 3, Name: "Widget", Price: 9.99, Stock: 5}
	before := time.Now()
	s := NewSale(1, p, 3)

	if s.ID != 1 {
		t.Fatalf("expected sale id 1, got %d", s.ID)
	}
	if s.ProductID != 3 || s.ProductName != "Widget" || s.UnitPrice != 9.99 {
		t.Fatalf("snapshot fields not copied: %+v", s)
	}
	if s.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", s.Quantity)
	}
	if math.Abs(s.Total-29.97) > 1e-9 {
		t.Fatalf("expected total 29.97, got %v", s.Total)
	}
	if s.Timestamp.Before(before) || s.Timestamp.After(time.Now()) {
		t.Fatalf("timestamp not taken at construction: %v", s.Timestamp)
	}
}

func TestSaleSnapshotSurvivesProductChange(t *testing.T) {
	p := &Product{ID: 3, Name: "Widget", Price: 9.99, Stock: 5}
	s := NewSale(1, p, 2)

	p.Name = "Widget Pro"
	p.Price = 19.99
	p.Stock = 0

	if s.ProductName != "Widget" {
		t.Fatalf("sale name should not track the product, got %q", s.ProductName)
	}
	if s.UnitPrice != 9.99 {
		t.Fatalf("sale price should not track the product, got %v", s.UnitPrice)
	}
	if math.Abs(s.Total-19.98) > 1e-9 {
		t.Fatalf("total should be fixed at sale time, got %v", s.Total)
	}
}

func TestSaleString(t *testing.T) {
	ts := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	s := &Sale{ID: 2, ProductID: 3, ProductName: "Widget", UnitPrice: 9.99, Quantity: 3, Total: 29.97, Timestamp: ts}

	expected := "Sale ID: 2 | Product: Widget | Qty: 3 | Total: $29.97 | Date: 2024-06-01 14:30"
	if s.String() != expected {
		t.Fatalf("expected %q, got %q", expected, s.String())
	}
}
