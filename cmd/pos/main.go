package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chibambakasolo-code/BizSensei/pkg/application/services/pos"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
	csvrepo "github.com/chibambakasolo-code/BizSensei/pkg/infrastructure/repositories/csv"
	"github.com/chibambakasolo-code/BizSensei/pkg/infrastructure/repositories/memory"
)

func main() {
	// Command line flags
	var (
		categoriesFile = flag.String("categories", "configs/business_categories.csv", "Path to the business category CSV file")
		threshold      = flag.Int("threshold", 5, "Low stock threshold")
		currency       = flag.String("currency", "K", "Currency symbol")
		businessName   = flag.String("business-name", "", "Business name for setup")
		businessType   = flag.String("business-type", "", "Business type id for setup")
	)

	flag.Parse()

	categories := map[string][]string{}
	if loaded, err := csvrepo.NewLoader().LoadCategories(*categoriesFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using generic categories\n", err)
	} else {
		categories = loaded
	}

	settings := entities.DefaultSettings()
	settings.LowStockThreshold = *threshold
	settings.Currency = *currency

	engine := pos.NewEngineWithConfig(
		memory.NewItemRepository(),
		memory.NewSaleRepository(),
		memory.NewInventoryRepository(),
		memory.NewAlertRepository(),
		pos.Config{Settings: settings, Categories: categories},
	)

	if *businessName != "" && *businessType != "" {
		if err := engine.SetupBusiness(*businessName, *businessType); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Business %q set up as %s. Categories: %s\n",
			*businessName, *businessType, strings.Join(engine.Categories(), ", "))
	}

	if err := run(engine); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run drives a line-oriented shell against the engine
func run(engine *pos.Engine) error {
	fmt.Println("Point-of-sale shell. Type 'help' for commands.")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, rest, _ := strings.Cut(line, " ")
		switch command {
		case "help":
			printHelp()
		case "add":
			handleAdd(engine, rest)
		case "sell":
			handleSell(engine, rest)
		case "stock":
			handleStock(engine)
		case "report":
			handleReport(engine, rest)
		case "restock":
			handleRestock(engine)
		case "alerts":
			handleAlerts(engine)
		case "dismiss":
			handleDismiss(engine, rest)
		case "summary":
			handleSummary(engine)
		case "quit", "exit":
			return nil
		default:
			fmt.Printf("Unknown command %q. Type 'help' for commands.\n", command)
		}
	}
}

func printHelp() {
	fmt.Println(`Commands:
  add <name>;<category>;<cost>;<price>;<initial stock>
  sell <free text, e.g. "sold milk 2 for k15">
  stock                 show inventory status
  report <days>         sales analytics over a trailing window
  restock               restock suggestions
  alerts                active alerts
  dismiss <alert id>    dismiss an alert
  summary               today's sales summary
  quit`)
}

func handleAdd(engine *pos.Engine, rest string) {
	parts := strings.Split(rest, ";")
	if len(parts) != 5 {
		fmt.Println("Usage: add <name>;<category>;<cost>;<price>;<initial stock>")
		return
	}
	cost, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil {
		fmt.Printf("Bad cost price: %v\n", err)
		return
	}
	price, err := decimal.NewFromString(strings.TrimSpace(parts[3]))
	if err != nil {
		fmt.Printf("Bad selling price: %v\n", err)
		return
	}
	stock, err := strconv.Atoi(strings.TrimSpace(parts[4]))
	if err != nil {
		fmt.Printf("Bad initial stock: %v\n", err)
		return
	}

	item, err := engine.AddItem(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), cost, price, stock)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Added #%d %s (%s) at %s, stock %d\n", item.ID, item.Name, item.Category, item.SellingPrice, stock)
}

func handleSell(engine *pos.Engine, rest string) {
	parsed, err := engine.ParseSaleInput(rest)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	matches, err := engine.SearchItems(parsed.ItemName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(matches) == 0 {
		fmt.Printf("No catalog item matches %q\n", parsed.ItemName)
		return
	}

	sale, err := engine.RecordSale(matches[0].ID, parsed.Quantity, parsed.Price, "")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	currency := engine.Settings().Currency
	fmt.Printf("Sale #%d: %dx %s for %s%s (profit %s%s)\n",
		sale.ID, sale.Quantity, sale.ItemName, currency, sale.TotalAmount, currency, sale.Profit)
}

func handleStock(engine *pos.Engine) {
	statuses, err := engine.InventoryStatus()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	currency := engine.Settings().Currency
	for _, status := range statuses {
		marker := ""
		if status.IsLowStock {
			marker = "  LOW"
		}
		fmt.Printf("#%d %-24s qty %4d  value %s%s%s\n",
			status.Item.ID, status.Item.Name, status.Quantity, currency, status.TotalValue, marker)
	}
}

func handleReport(engine *pos.Engine, rest string) {
	days, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || days <= 0 {
		days = 30
	}

	analytics, err := engine.SalesAnalytics(days)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	currency := engine.Settings().Currency
	fmt.Printf("Last %d days: %d sales, revenue %s%s, profit %s%s, %d units\n",
		analytics.PeriodDays, analytics.TotalSales, currency, analytics.TotalRevenue,
		currency, analytics.TotalProfit, analytics.TotalQuantity)
	for _, perf := range analytics.TopItems {
		fmt.Printf("  %-24s qty %4d  revenue %s%s\n", perf.ItemName, perf.Quantity, currency, perf.Revenue)
	}
	for _, day := range analytics.SalesByDay {
		fmt.Printf("  %s  revenue %s%s  qty %d\n", day.Date, currency, day.Revenue, day.Quantity)
	}
}

func handleRestock(engine *pos.Engine) {
	suggestions, err := engine.RestockSuggestions()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(suggestions) == 0 {
		fmt.Println("No restock suggestions")
		return
	}
	for _, s := range suggestions {
		fmt.Printf("%-8s %-24s stock %3d, avg %s/day, order %d (%s)\n",
			s.Priority, s.Item.Name, s.CurrentStock, s.DailyAvgSales, s.SuggestedQuantity, s.Reason)
	}
}

func handleAlerts(engine *pos.Engine) {
	alerts, err := engine.ActiveAlerts()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(alerts) == 0 {
		fmt.Println("No active alerts")
		return
	}
	for _, alert := range alerts {
		fmt.Printf("#%d %s\n", alert.ID, alert.Message)
	}
}

func handleDismiss(engine *pos.Engine, rest string) {
	id, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		fmt.Println("Usage: dismiss <alert id>")
		return
	}
	if err := engine.DismissAlert(id); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Alert #%d dismissed\n", id)
}

func handleSummary(engine *pos.Engine) {
	summary, err := engine.DailySummary(time.Time{})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	currency := engine.Settings().Currency
	fmt.Printf("%s: %d sales, %d items, revenue %s%s, profit %s%s\n",
		summary.Date, summary.SalesCount, summary.TotalItemsSold,
		currency, summary.TotalRevenue, currency, summary.TotalProfit)
}
