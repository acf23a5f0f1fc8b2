package memory

import (
	"time"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/repositories"
)

// InventoryRepository provides in-memory storage for per-item stock
// records. It is not internally synchronized; the engine serializes access.
type InventoryRepository struct {
	records map[int]*entities.InventoryRecord
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		records: make(map[int]*entities.InventoryRecord),
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// GetOrCreate returns the record for the item, creating a zero-quantity
// record stamped with now if none exists yet
func (r *InventoryRepository) GetOrCreate(itemID int, now time.Time) (*entities.InventoryRecord, error) {
	if record, ok := r.records[itemID]; ok {
		return record, nil
	}
	record := &entities.InventoryRecord{
		ItemID:      itemID,
		Quantity:    0,
		LastUpdated: now,
	}
	r.records[itemID] = record
	return record, nil
}

// Get returns the record for the item
func (r *InventoryRepository) Get(itemID int) (*entities.InventoryRecord, error) {
	record, ok := r.records[itemID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return record, nil
}

// Quantity returns the current stock for the item, zero if it has no record
func (r *InventoryRepository) Quantity(itemID int) (int, error) {
	record, ok := r.records[itemID]
	if !ok {
		return 0, nil
	}
	return record.Quantity, nil
}
