package repositories

import (
	"time"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
)

// InventoryRepository defines storage for per-item stock records.
type InventoryRepository interface {
	// GetOrCreate returns the record for the item, creating a zero-quantity
	// record stamped with now if none exists yet
	GetOrCreate(itemID int, now time.Time) (*entities.InventoryRecord, error)

	// Get returns the record for the item or ErrNotFound
	Get(itemID int) (*entities.InventoryRecord, error)

	// Quantity returns the current stock for the item, zero if it has no record
	Quantity(itemID int) (int, error)
}
