package pos

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSalesAnalytics_Fixture(t *testing.T) {
	engine := newTestEngine()
	milk := mustAddItem(t, engine, "Milk", 5, 8, 100)

	if _, err := engine.RecordSale(milk.ID, 3, decimal.NewFromInt(8), ""); err != nil {
		t.Fatalf("Failed to record sale: %v", err)
	}
	if _, err := engine.RecordSale(milk.ID, 2, decimal.NewFromInt(8), ""); err != nil {
		t.Fatalf("Failed to record sale: %v", err)
	}

	analytics, err := engine.SalesAnalytics(30)
	if err != nil {
		t.Fatalf("Failed to compute analytics: %v", err)
	}

	if analytics.TotalSales != 2 {
		t.Errorf("Expected 2 sales, got %d", analytics.TotalSales)
	}
	if !analytics.TotalRevenue.Equal(decimal.NewFromInt(40)) {
		t.Errorf("Expected revenue 40, got %s", analytics.TotalRevenue)
	}
	if !analytics.TotalProfit.Equal(decimal.NewFromInt(15)) {
		t.Errorf("Expected profit 15, got %s", analytics.TotalProfit)
	}
	if analytics.TotalQuantity != 5 {
		t.Errorf("Expected 5 units, got %d", analytics.TotalQuantity)
	}
	if !analytics.AverageSale.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Expected average sale 20, got %s", analytics.AverageSale)
	}

	if len(analytics.TopItems) != 1 {
		t.Fatalf("Expected 1 top item, got %d", len(analytics.TopItems))
	}
	top := analytics.TopItems[0]
	if top.ItemName != "Milk" || top.Quantity != 5 {
		t.Errorf("Expected Milk with 5 units, got %s with %d", top.ItemName, top.Quantity)
	}
	if !top.Revenue.Equal(decimal.NewFromInt(40)) || !top.Profit.Equal(decimal.NewFromInt(15)) {
		t.Errorf("Expected revenue 40 and profit 15, got %s and %s", top.Revenue, top.Profit)
	}
}

func TestSalesAnalytics_EmptyWindow(t *testing.T) {
	engine := newTestEngine()

	analytics, err := engine.SalesAnalytics(30)
	if err != nil {
		t.Fatalf("Failed to compute analytics: %v", err)
	}

	if analytics.TotalSales != 0 || analytics.TotalQuantity != 0 {
		t.Errorf("Expected zero counts, got %d sales / %d units", analytics.TotalSales, analytics.TotalQuantity)
	}
	if !analytics.TotalRevenue.IsZero() || !analytics.TotalProfit.IsZero() || !analytics.AverageSale.IsZero() {
		t.Errorf("Expected zero totals, got revenue %s profit %s average %s",
			analytics.TotalRevenue, analytics.TotalProfit, analytics.AverageSale)
	}
	if len(analytics.TopItems) != 0 || len(analytics.SalesByDay) != 0 {
		t.Errorf("Expected empty slices, got %d top items and %d days",
			len(analytics.TopItems), len(analytics.SalesByDay))
	}
}

func TestSalesAnalytics_TopItemsSortedByRevenue(t *testing.T) {
	engine := newTestEngine()
	milk := mustAddItem(t, engine, "Milk", 5, 8, 100)
	bread := mustAddItem(t, engine, "Bread", 3, 6, 100)
	butter := mustAddItem(t, engine, "Butter", 4, 7, 100)

	engine.RecordSale(bread.ID, 2, decimal.NewFromInt(6), "")   // revenue 12
	engine.RecordSale(milk.ID, 10, decimal.NewFromInt(8), "")   // revenue 80
	engine.RecordSale(butter.ID, 5, decimal.NewFromInt(7), "")  // revenue 35

	analytics, err := engine.SalesAnalytics(30)
	if err != nil {
		t.Fatalf("Failed to compute analytics: %v", err)
	}

	if len(analytics.TopItems) != 3 {
		t.Fatalf("Expected 3 top items, got %d", len(analytics.TopItems))
	}
	expected := []string{"Milk", "Butter", "Bread"}
	for i, name := range expected {
		if analytics.TopItems[i].ItemName != name {
			t.Errorf("Expected position %d to be %s, got %s", i, name, analytics.TopItems[i].ItemName)
		}
	}
}

func TestSalesAnalytics_SalesByDay(t *testing.T) {
	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	current := base
	engine := newTestEngineWithConfig(Config{Clock: func() time.Time { return current }})

	milk := mustAddItem(t, engine, "Milk", 5, 8, 100)

	current = base.AddDate(0, 0, -2)
	engine.RecordSale(milk.ID, 2, decimal.NewFromInt(8), "")
	current = base.AddDate(0, 0, -1)
	engine.RecordSale(milk.ID, 1, decimal.NewFromInt(8), "")
	engine.RecordSale(milk.ID, 3, decimal.NewFromInt(8), "")
	current = base

	analytics, err := engine.SalesAnalytics(30)
	if err != nil {
		t.Fatalf("Failed to compute analytics: %v", err)
	}

	if len(analytics.SalesByDay) != 2 {
		t.Fatalf("Expected 2 days, got %d", len(analytics.SalesByDay))
	}
	first, second := analytics.SalesByDay[0], analytics.SalesByDay[1]
	if first.Date != "2025-06-08" || second.Date != "2025-06-09" {
		t.Errorf("Expected ascending dates, got %s then %s", first.Date, second.Date)
	}
	if first.Quantity != 2 || second.Quantity != 4 {
		t.Errorf("Expected quantities 2 and 4, got %d and %d", first.Quantity, second.Quantity)
	}
	if !second.Revenue.Equal(decimal.NewFromInt(32)) {
		t.Errorf("Expected day revenue 32, got %s", second.Revenue)
	}
}

func TestSalesAnalytics_WindowExcludesOldSales(t *testing.T) {
	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	current := base
	engine := newTestEngineWithConfig(Config{Clock: func() time.Time { return current }})

	milk := mustAddItem(t, engine, "Milk", 5, 8, 100)

	current = base.AddDate(0, 0, -40)
	engine.RecordSale(milk.ID, 5, decimal.NewFromInt(8), "")
	current = base
	engine.RecordSale(milk.ID, 1, decimal.NewFromInt(8), "")

	analytics, err := engine.SalesAnalytics(30)
	if err != nil {
		t.Fatalf("Failed to compute analytics: %v", err)
	}
	if analytics.TotalSales != 1 {
		t.Errorf("Expected only the recent sale in the window, got %d", analytics.TotalSales)
	}
	if analytics.TotalQuantity != 1 {
		t.Errorf("Expected quantity 1, got %d", analytics.TotalQuantity)
	}
}

func TestRestockSuggestions_LowStock(t *testing.T) {
	engine := newTestEngine()
	milk := mustAddItem(t, engine, "Milk", 5, 8, 33)

	// 30 units over the 30-day window gives a velocity of 1/day,
	// leaving 3 in stock against a threshold of 5
	if _, err := engine.RecordSale(milk.ID, 30, decimal.NewFromInt(8), ""); err != nil {
		t.Fatalf("Failed to record sale: %v", err)
	}

	suggestions, err := engine.RestockSuggestions()
	if err != nil {
		t.Fatalf("Failed to compute suggestions: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("Expected 1 suggestion, got %d", len(suggestions))
	}

	s := suggestions[0]
	if s.Item.ID != milk.ID {
		t.Errorf("Expected suggestion for Milk, got item %d", s.Item.ID)
	}
	if s.CurrentStock != 3 {
		t.Errorf("Expected current stock 3, got %d", s.CurrentStock)
	}
	if s.Priority.String() != "High" {
		t.Errorf("Expected High priority, got %s", s.Priority)
	}
	if s.Reason != "Low stock" {
		t.Errorf("Expected reason Low stock, got %q", s.Reason)
	}
	if s.SuggestedQuantity != 14 {
		t.Errorf("Expected suggested quantity max(14, 10) = 14, got %d", s.SuggestedQuantity)
	}
	if !s.DailyAvgSales.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Expected daily average 1, got %s", s.DailyAvgSales)
	}
}

func TestRestockSuggestions_HighVelocity(t *testing.T) {
	engine := newTestEngine()
	// 60 sold in the window, 10 left: above the threshold of 5 but
	// below a week of the 2/day velocity
	milk := mustAddItem(t, engine, "Milk", 5, 8, 70)

	if _, err := engine.RecordSale(milk.ID, 60, decimal.NewFromInt(8), ""); err != nil {
		t.Fatalf("Failed to record sale: %v", err)
	}

	suggestions, err := engine.RestockSuggestions()
	if err != nil {
		t.Fatalf("Failed to compute suggestions: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("Expected 1 suggestion, got %d", len(suggestions))
	}

	s := suggestions[0]
	if s.Priority.String() != "Medium" {
		t.Errorf("Expected Medium priority, got %s", s.Priority)
	}
	if s.Reason != "High sales velocity" {
		t.Errorf("Expected reason High sales velocity, got %q", s.Reason)
	}
	if s.SuggestedQuantity != 28 {
		t.Errorf("Expected suggested quantity 2*14 = 28, got %d", s.SuggestedQuantity)
	}
}

func TestRestockSuggestions_WellStockedItemSkipped(t *testing.T) {
	engine := newTestEngine()
	milk := mustAddItem(t, engine, "Milk", 5, 8, 100)

	// 1/day velocity with 97 in stock needs nothing
	if _, err := engine.RecordSale(milk.ID, 3, decimal.NewFromInt(8), ""); err != nil {
		t.Fatalf("Failed to record sale: %v", err)
	}

	suggestions, err := engine.RestockSuggestions()
	if err != nil {
		t.Fatalf("Failed to compute suggestions: %v", err)
	}
	if len(suggestions) != 0 {
		t.Errorf("Expected no suggestions, got %d", len(suggestions))
	}
}

func TestRestockSuggestions_SortedByStockAscending(t *testing.T) {
	engine := newTestEngine()
	milk := mustAddItem(t, engine, "Milk", 5, 8, 34)
	bread := mustAddItem(t, engine, "Bread", 3, 6, 31)

	engine.RecordSale(milk.ID, 30, decimal.NewFromInt(8), "")   // 4 left
	engine.RecordSale(bread.ID, 30, decimal.NewFromInt(6), "")  // 1 left

	suggestions, err := engine.RestockSuggestions()
	if err != nil {
		t.Fatalf("Failed to compute suggestions: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("Expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Item.Name != "Bread" || suggestions[1].Item.Name != "Milk" {
		t.Errorf("Expected most urgent first, got %s then %s",
			suggestions[0].Item.Name, suggestions[1].Item.Name)
	}
}
