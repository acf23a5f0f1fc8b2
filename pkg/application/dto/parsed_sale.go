package dto

import "github.com/shopspring/decimal"

// ParsedSale is the best-effort decomposition of a free-text sale
// description into its item name, quantity, and unit price.
type ParsedSale struct {
	ItemName string
	Quantity int
	Price    decimal.Decimal
}
