package dto

import (
	"github.com/shopspring/decimal"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
)

// RestockPriority represents the urgency of a restock suggestion
type RestockPriority int

const (
	PriorityMedium RestockPriority = iota
	PriorityHigh
)

// String method for RestockPriority enum
func (p RestockPriority) String() string {
	switch p {
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// RestockSuggestion recommends a reorder quantity for a fast-moving or
// under-stocked item, sized from its recent sales velocity.
type RestockSuggestion struct {
	Item              entities.Item
	CurrentStock      int
	DailyAvgSales     decimal.Decimal
	SuggestedQuantity int
	Reason            string
	Priority          RestockPriority
}
