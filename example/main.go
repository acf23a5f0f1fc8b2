package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chibambakasolo-code/BizSensei/pkg/application/services/pos"
	"github.com/chibambakasolo-code/BizSensei/pkg/infrastructure/repositories/memory"
)

func main() {
	// Create repositories
	engine := pos.NewEngine(
		memory.NewItemRepository(),
		memory.NewSaleRepository(),
		memory.NewInventoryRepository(),
		memory.NewAlertRepository(),
	)

	fmt.Println("Stocking the shop...")
	milk, err := engine.AddItem("milk", "Dairy & Eggs", decimal.NewFromInt(5), decimal.NewFromInt(8), 20)
	if err != nil {
		fmt.Printf("add item failed: %v\n", err)
		return
	}
	bread, err := engine.AddItem("bread", "Bread & Bakery", decimal.NewFromInt(3), decimal.NewFromInt(6), 4)
	if err != nil {
		fmt.Printf("add item failed: %v\n", err)
		return
	}
	fmt.Printf("  #%d %s at %s, #%d %s at %s\n",
		milk.ID, milk.Name, milk.SellingPrice, bread.ID, bread.Name, bread.SellingPrice)

	fmt.Println("\nRecording sales...")
	parsed, err := engine.ParseSaleInput("sold milk 3 for k8")
	if err != nil {
		fmt.Printf("parse failed: %v\n", err)
		return
	}
	sale, err := engine.RecordSale(milk.ID, parsed.Quantity, parsed.Price, "")
	if err != nil {
		fmt.Printf("sale failed: %v\n", err)
		return
	}
	fmt.Printf("  %dx %s for K%s (profit K%s)\n", sale.Quantity, sale.ItemName, sale.TotalAmount, sale.Profit)

	if _, err := engine.RecordSale(bread.ID, 2, decimal.NewFromInt(6), "morning rush"); err != nil {
		fmt.Printf("sale failed: %v\n", err)
		return
	}

	// Bread is down to 2 units, below the default threshold of 5
	alerts, _ := engine.ActiveAlerts()
	fmt.Println("\nActive alerts:")
	for _, alert := range alerts {
		fmt.Printf("  #%d %s\n", alert.ID, alert.Message)
	}

	analytics, err := engine.SalesAnalytics(7)
	if err != nil {
		fmt.Printf("analytics failed: %v\n", err)
		return
	}
	fmt.Printf("\nLast 7 days: %d sales, revenue K%s, profit K%s\n",
		analytics.TotalSales, analytics.TotalRevenue, analytics.TotalProfit)
	for _, perf := range analytics.TopItems {
		fmt.Printf("  %s: %d units, K%s revenue\n", perf.ItemName, perf.Quantity, perf.Revenue)
	}

	suggestions, err := engine.RestockSuggestions()
	if err != nil {
		fmt.Printf("restock failed: %v\n", err)
		return
	}
	fmt.Println("\nRestock suggestions:")
	for _, s := range suggestions {
		fmt.Printf("  [%s] %s: stock %d, order %d (%s)\n",
			s.Priority, s.Item.Name, s.CurrentStock, s.SuggestedQuantity, s.Reason)
	}

	summary, err := engine.DailySummary(time.Time{})
	if err != nil {
		fmt.Printf("summary failed: %v\n", err)
		return
	}
	fmt.Printf("\nToday (%s): %d sales, K%s revenue\n", summary.Date, summary.SalesCount, summary.TotalRevenue)
}
