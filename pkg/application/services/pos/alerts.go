package pos

import (
	"errors"
	"fmt"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/repositories"
)

// CheckLowStock raises a low-stock alert for the item if its quantity is at
// or below the threshold and no active alert for it exists yet. Repeated
// calls while an alert is active are no-ops; only dismissal re-arms it.
func (e *Engine) CheckLowStock(itemID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.checkLowStockLocked(itemID)
}

// checkLowStockLocked is the re-check run after every stock mutation.
// Callers must hold the write lock.
func (e *Engine) checkLowStockLocked(itemID int) error {
	item, err := e.items.GetByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// stock can be adjusted ahead of cataloging; nothing to alert on
			return nil
		}
		return err
	}

	quantity, err := e.inventory.Quantity(itemID)
	if err != nil {
		return err
	}
	if quantity > e.settings.LowStockThreshold {
		return nil
	}

	exists, err := e.alerts.HasActive(entities.AlertLowStock, itemID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = e.alerts.Save(&entities.Alert{
		Type:      entities.AlertLowStock,
		ItemID:    itemID,
		ItemName:  item.Name,
		Message:   fmt.Sprintf("Low stock alert: %s has only %d units remaining", item.Name, quantity),
		CreatedAt: e.clock(),
		Active:    true,
	})
	return err
}

// DismissAlert deactivates the alert with the given id. Unknown or already
// dismissed ids are no-ops.
func (e *Engine) DismissAlert(alertID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	alert, err := e.alerts.GetByID(alertID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	alert.Active = false
	return nil
}

// ActiveAlerts returns active alerts in creation order
func (e *Engine) ActiveAlerts() ([]entities.Alert, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	active, err := e.alerts.Active()
	if err != nil {
		return nil, err
	}
	alerts := make([]entities.Alert, 0, len(active))
	for _, alert := range active {
		alerts = append(alerts, *alert)
	}
	return alerts, nil
}
