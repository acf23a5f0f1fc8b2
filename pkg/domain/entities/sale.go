package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a single recorded sale. The item name and cost price are
// snapshots taken at sale time so the ledger stays stable if catalog data
// ever changes. Sales are append-only and immutable once recorded.
type Sale struct {
	ID          int
	ItemID      int
	ItemName    string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	CostPrice   decimal.Decimal
	Profit      decimal.Decimal
	SaleDate    time.Time
	Notes       string
}

// NewSale creates a validated Sale with its derived amounts computed.
// TotalAmount is unit price times quantity; Profit is the per-unit margin
// over the snapshotted cost price times quantity.
func NewSale(itemID int, itemName string, quantity int, unitPrice, costPrice decimal.Decimal, saleDate time.Time, notes string) (*Sale, error) {
	if itemName == "" {
		return nil, fmt.Errorf("item name cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if !unitPrice.IsPositive() {
		return nil, fmt.Errorf("unit price must be positive, got %s", unitPrice)
	}

	qty := decimal.NewFromInt(int64(quantity))
	return &Sale{
		ItemID:      itemID,
		ItemName:    itemName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalAmount: unitPrice.Mul(qty),
		CostPrice:   costPrice,
		Profit:      unitPrice.Sub(costPrice).Mul(qty),
		SaleDate:    saleDate,
		Notes:       notes,
	}, nil
}
