package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Item represents a sellable catalog item with its pricing attributes.
// Items are immutable once created except for the Active soft-delete flag.
type Item struct {
	ID           int
	Name         string
	Category     string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	CreatedAt    time.Time
	Active       bool
}

// NewItem creates a validated Item. The caller supplies an already
// normalized display name; the ID is assigned by the item repository.
func NewItem(name, category string, costPrice, sellingPrice decimal.Decimal, createdAt time.Time) (*Item, error) {
	if name == "" {
		return nil, fmt.Errorf("item name cannot be empty")
	}
	if costPrice.IsNegative() {
		return nil, fmt.Errorf("cost price cannot be negative, got %s", costPrice)
	}

	return &Item{
		Name:         name,
		Category:     category,
		CostPrice:    costPrice,
		SellingPrice: sellingPrice,
		CreatedAt:    createdAt,
		Active:       true,
	}, nil
}
