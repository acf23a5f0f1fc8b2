package pos

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chibambakasolo-code/BizSensei/pkg/application/dto"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
)

const (
	topItemLimit        = 10
	restockWindowDays   = 30
	velocityHorizonDays = 7
	restockCoverDays    = 14
)

// SalesAnalytics aggregates sales over a trailing window of days: totals,
// per-item performance sorted by revenue, and a per-day series sorted by
// date. An empty window yields zero totals and empty slices.
func (e *Engine) SalesAnalytics(windowDays int) (dto.SalesAnalytics, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.salesAnalyticsLocked(windowDays)
}

func (e *Engine) salesAnalyticsLocked(windowDays int) (dto.SalesAnalytics, error) {
	cutoff := e.clock().Add(-time.Duration(windowDays) * 24 * time.Hour)
	recent, err := e.sales.Since(cutoff)
	if err != nil {
		return dto.SalesAnalytics{}, err
	}

	analytics := dto.SalesAnalytics{
		TotalRevenue: decimal.Zero,
		TotalProfit:  decimal.Zero,
		AverageSale:  decimal.Zero,
		TopItems:     []dto.ItemPerformance{},
		SalesByDay:   []dto.DailySales{},
		PeriodDays:   windowDays,
	}
	if len(recent) == 0 {
		return analytics, nil
	}

	itemPerf := make(map[int]*dto.ItemPerformance)
	var itemOrder []int
	dailyPerf := make(map[string]*dto.DailySales)

	for _, sale := range recent {
		analytics.TotalRevenue = analytics.TotalRevenue.Add(sale.TotalAmount)
		analytics.TotalProfit = analytics.TotalProfit.Add(sale.Profit)
		analytics.TotalQuantity += sale.Quantity

		perf, ok := itemPerf[sale.ItemID]
		if !ok {
			perf = &dto.ItemPerformance{
				ItemName: sale.ItemName,
				Revenue:  decimal.Zero,
				Profit:   decimal.Zero,
			}
			itemPerf[sale.ItemID] = perf
			itemOrder = append(itemOrder, sale.ItemID)
		}
		perf.Quantity += sale.Quantity
		perf.Revenue = perf.Revenue.Add(sale.TotalAmount)
		perf.Profit = perf.Profit.Add(sale.Profit)

		day := sale.SaleDate.Format(dayFormat)
		daily, ok := dailyPerf[day]
		if !ok {
			daily = &dto.DailySales{Date: day, Revenue: decimal.Zero}
			dailyPerf[day] = daily
		}
		daily.Revenue = daily.Revenue.Add(sale.TotalAmount)
		daily.Quantity += sale.Quantity
	}

	analytics.TotalSales = len(recent)
	analytics.AverageSale = analytics.TotalRevenue.Div(decimal.NewFromInt(int64(len(recent))))

	topItems := make([]dto.ItemPerformance, 0, len(itemOrder))
	for _, id := range itemOrder {
		topItems = append(topItems, *itemPerf[id])
	}
	sort.SliceStable(topItems, func(i, j int) bool {
		return topItems[i].Revenue.GreaterThan(topItems[j].Revenue)
	})
	if len(topItems) > topItemLimit {
		topItems = topItems[:topItemLimit]
	}
	analytics.TopItems = topItems

	salesByDay := make([]dto.DailySales, 0, len(dailyPerf))
	for _, daily := range dailyPerf {
		salesByDay = append(salesByDay, *daily)
	}
	sort.Slice(salesByDay, func(i, j int) bool {
		return salesByDay[i].Date < salesByDay[j].Date
	})
	analytics.SalesByDay = salesByDay

	return analytics, nil
}

// RestockSuggestions sizes reorders for the top sellers of the last 30
// days. An item is flagged when its stock is at or below the low-stock
// threshold or below a week of its daily sales velocity; the suggested
// quantity covers two weeks of velocity or twice the threshold, whichever
// is larger. Results are ordered most urgent (lowest stock) first.
func (e *Engine) RestockSuggestions() ([]dto.RestockSuggestion, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	analytics, err := e.salesAnalyticsLocked(restockWindowDays)
	if err != nil {
		return nil, err
	}

	all, err := e.items.All()
	if err != nil {
		return nil, err
	}

	threshold := e.settings.LowStockThreshold
	window := decimal.NewFromInt(restockWindowDays)

	var suggestions []dto.RestockSuggestion
	for _, perf := range analytics.TopItems {
		// resolve by name, first catalog match wins
		var item *entities.Item
		for _, candidate := range all {
			if candidate.Name == perf.ItemName {
				item = candidate
				break
			}
		}
		if item == nil {
			continue
		}

		currentStock, err := e.inventory.Quantity(item.ID)
		if err != nil {
			return nil, err
		}

		dailyAvg := decimal.NewFromInt(int64(perf.Quantity)).Div(window)
		weekDemand := dailyAvg.Mul(decimal.NewFromInt(velocityHorizonDays))
		stock := decimal.NewFromInt(int64(currentStock))

		lowStock := currentStock <= threshold
		if !lowStock && !stock.LessThan(weekDemand) {
			continue
		}

		suggested := dailyAvg.Mul(decimal.NewFromInt(restockCoverDays)).IntPart()
		if min := int64(threshold * 2); suggested < min {
			suggested = min
		}

		suggestion := dto.RestockSuggestion{
			Item:              *item,
			CurrentStock:      currentStock,
			DailyAvgSales:     dailyAvg.Round(2),
			SuggestedQuantity: int(suggested),
			Reason:            "High sales velocity",
			Priority:          dto.PriorityMedium,
		}
		if lowStock {
			suggestion.Reason = "Low stock"
			suggestion.Priority = dto.PriorityHigh
		}
		suggestions = append(suggestions, suggestion)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].CurrentStock < suggestions[j].CurrentStock
	})
	return suggestions, nil
}
