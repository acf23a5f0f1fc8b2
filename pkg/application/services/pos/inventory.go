package pos

import (
	"github.com/shopspring/decimal"

	"github.com/chibambakasolo-code/BizSensei/pkg/application/dto"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
)

// UpdateInventory adjusts the stock for an item. Add increments, set
// overwrites, and subtract decrements clamped at zero. A zero-quantity
// record is created if the item has none yet, and a low-stock check runs
// after every adjustment.
func (e *Engine) UpdateInventory(itemID, quantity int, operation entities.Operation) (entities.InventoryRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	record, err := e.inventory.GetOrCreate(itemID, now)
	if err != nil {
		return entities.InventoryRecord{}, err
	}

	switch operation {
	case entities.OperationAdd:
		record.Quantity += quantity
	case entities.OperationSet:
		record.Quantity = quantity
	case entities.OperationSubtract:
		record.Quantity -= quantity
		if record.Quantity < 0 {
			record.Quantity = 0
		}
	default:
		return entities.InventoryRecord{}, &ValidationError{Reason: "unknown inventory operation"}
	}
	record.LastUpdated = now

	if err := e.checkLowStockLocked(itemID); err != nil {
		return entities.InventoryRecord{}, err
	}
	return *record, nil
}

// InventoryStatus reports the stock position of every active item in
// catalog order. Items without a record show a zero quantity.
func (e *Engine) InventoryStatus() ([]dto.InventoryStatus, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	active, err := e.items.Active()
	if err != nil {
		return nil, err
	}

	statuses := make([]dto.InventoryStatus, 0, len(active))
	for _, item := range active {
		quantity := 0
		lastUpdated := e.clock()
		if record, err := e.inventory.Get(item.ID); err == nil {
			quantity = record.Quantity
			lastUpdated = record.LastUpdated
		}

		statuses = append(statuses, dto.InventoryStatus{
			Item:        *item,
			Quantity:    quantity,
			LastUpdated: lastUpdated,
			IsLowStock:  quantity <= e.settings.LowStockThreshold,
			TotalValue:  item.SellingPrice.Mul(decimal.NewFromInt(int64(quantity))),
		})
	}
	return statuses, nil
}

// StockQuantity returns the current stock for an item, zero if it has no record
func (e *Engine) StockQuantity(itemID int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.inventory.Quantity(itemID)
}
