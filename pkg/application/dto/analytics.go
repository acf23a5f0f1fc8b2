package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
)

// ItemPerformance aggregates sales of a single item over a window
type ItemPerformance struct {
	ItemName string
	Quantity int
	Revenue  decimal.Decimal
	Profit   decimal.Decimal
}

// DailySales aggregates sales for one calendar day within a window
type DailySales struct {
	Date     string
	Revenue  decimal.Decimal
	Quantity int
}

// SalesAnalytics contains the aggregated view of sales over a trailing
// window of days. An empty window yields zero totals and empty slices.
type SalesAnalytics struct {
	TotalSales    int
	TotalRevenue  decimal.Decimal
	TotalProfit   decimal.Decimal
	TotalQuantity int
	AverageSale   decimal.Decimal
	TopItems      []ItemPerformance
	SalesByDay    []DailySales
	PeriodDays    int
}

// DailySummary contains the sales aggregate for a single calendar day
type DailySummary struct {
	Date           string
	TotalSales     int
	TotalRevenue   decimal.Decimal
	TotalProfit    decimal.Decimal
	TotalItemsSold int
	SalesCount     int
	Sales          []entities.Sale
}

// InventoryStatus pairs a catalog item with its current stock position
type InventoryStatus struct {
	Item        entities.Item
	Quantity    int
	LastUpdated time.Time
	IsLowStock  bool
	TotalValue  decimal.Decimal
}
