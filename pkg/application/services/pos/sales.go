package pos

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chibambakasolo-code/BizSensei/pkg/application/dto"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/repositories"
)

const dayFormat = "2006-01-02"

// RecordSale records a sale against current stock. The ledger entry, the
// stock decrement, and the low-stock check happen under one lock: either
// all three apply or, on insufficient stock, nothing changes. Profit is
// computed from the item's cost price at call time.
func (e *Engine) RecordSale(itemID, quantity int, salePrice decimal.Decimal, notes string) (entities.Sale, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, err := e.items.GetByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return entities.Sale{}, &ItemNotFoundError{ID: itemID}
		}
		return entities.Sale{}, err
	}

	now := e.clock()
	sale, err := entities.NewSale(item.ID, item.Name, quantity, salePrice, item.CostPrice, now, notes)
	if err != nil {
		return entities.Sale{}, &ValidationError{Reason: err.Error()}
	}

	currentStock, err := e.inventory.Quantity(itemID)
	if err != nil {
		return entities.Sale{}, err
	}
	if currentStock < quantity {
		return entities.Sale{}, &InsufficientStockError{ItemID: itemID, Requested: quantity, Available: currentStock}
	}

	saved, err := e.sales.Save(sale)
	if err != nil {
		return entities.Sale{}, err
	}

	record, err := e.inventory.GetOrCreate(itemID, now)
	if err != nil {
		return entities.Sale{}, err
	}
	record.Quantity -= quantity
	record.LastUpdated = now

	if err := e.checkLowStockLocked(itemID); err != nil {
		return entities.Sale{}, err
	}
	return *saved, nil
}

// RecentSales returns up to limit sales, newest first
func (e *Engine) RecentSales(limit int) ([]entities.Sale, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	recent, err := e.sales.Recent(limit)
	if err != nil {
		return nil, err
	}
	sales := make([]entities.Sale, 0, len(recent))
	for _, sale := range recent {
		sales = append(sales, *sale)
	}
	return sales, nil
}

// DailySummary aggregates the sales of a single calendar day. A zero date
// means today. A day with no sales yields zero totals and an empty list.
func (e *Engine) DailySummary(date time.Time) (dto.DailySummary, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if date.IsZero() {
		date = e.clock()
	}
	day := date.Format(dayFormat)

	all, err := e.sales.All()
	if err != nil {
		return dto.DailySummary{}, err
	}

	summary := dto.DailySummary{
		Date:         day,
		TotalRevenue: decimal.Zero,
		TotalProfit:  decimal.Zero,
		Sales:        []entities.Sale{},
	}
	for _, sale := range all {
		if sale.SaleDate.Format(dayFormat) != day {
			continue
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.TotalAmount)
		summary.TotalProfit = summary.TotalProfit.Add(sale.Profit)
		summary.TotalItemsSold += sale.Quantity
		summary.Sales = append(summary.Sales, *sale)
	}
	summary.TotalSales = len(summary.Sales)
	summary.SalesCount = len(summary.Sales)
	return summary, nil
}
