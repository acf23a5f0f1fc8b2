package pos

import "fmt"

// ItemNotFoundError is returned when an operation references an unknown item id.
type ItemNotFoundError struct {
	ID int
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item not found: %d", e.ID)
}

// InsufficientStockError is returned when a sale asks for more units than
// are in stock. Available carries the quantity that could be sold.
type InsufficientStockError struct {
	ItemID    int
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %d: requested %d, available: %d", e.ItemID, e.Requested, e.Available)
}

// ParseError is returned when free-text sale input cannot be decomposed
// into an item name, quantity, and price.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse sale input: %s", e.Reason)
}

// ValidationError is returned when a mutation carries an invalid value,
// such as a negative low-stock threshold.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}
