package pos

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
	"github.com/chibambakasolo-code/BizSensei/pkg/infrastructure/repositories/memory"
)

func newTestEngine() *Engine {
	return newTestEngineWithConfig(Config{})
}

func newTestEngineWithConfig(cfg Config) *Engine {
	return NewEngineWithConfig(
		memory.NewItemRepository(),
		memory.NewSaleRepository(),
		memory.NewInventoryRepository(),
		memory.NewAlertRepository(),
		cfg,
	)
}

func mustAddItem(t *testing.T, engine *Engine, name string, cost, selling int64, stock int) entities.Item {
	t.Helper()
	item, err := engine.AddItem(name, "General", decimal.NewFromInt(cost), decimal.NewFromInt(selling), stock)
	if err != nil {
		t.Fatalf("Failed to add item %s: %v", name, err)
	}
	return item
}
