package entities

import (
	"fmt"
	"time"
)

// Operation represents an inventory adjustment mode
type Operation int

const (
	OperationAdd Operation = iota
	OperationSet
	OperationSubtract
)

// String method for Operation enum
func (o Operation) String() string {
	switch o {
	case OperationAdd:
		return "add"
	case OperationSet:
		return "set"
	case OperationSubtract:
		return "subtract"
	default:
		return "Unknown"
	}
}

// ParseOperation maps the wire form of an adjustment mode to its enum value
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "add":
		return OperationAdd, nil
	case "set":
		return OperationSet, nil
	case "subtract":
		return OperationSubtract, nil
	default:
		return 0, fmt.Errorf("unknown inventory operation %q", s)
	}
}

// InventoryRecord represents the stock level for a single catalog item.
// Records are created lazily with a zero quantity on first reference.
type InventoryRecord struct {
	ItemID      int
	Quantity    int
	LastUpdated time.Time
}
