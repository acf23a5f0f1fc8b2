package memory

import (
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/repositories"
)

// ItemRepository provides in-memory catalog storage. It is not internally
// synchronized; the engine serializes access to it.
type ItemRepository struct {
	items  []*entities.Item
	nextID int
}

// NewItemRepository creates a new in-memory item repository
func NewItemRepository() *ItemRepository {
	return &ItemRepository{nextID: 1}
}

// Verify interface compliance
var _ repositories.ItemRepository = (*ItemRepository)(nil)

// Save stores the item and assigns the next sequential id
func (r *ItemRepository) Save(item *entities.Item) (*entities.Item, error) {
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// GetByID returns the item with the given id
func (r *ItemRepository) GetByID(id int) (*entities.Item, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// All returns every item in catalog order
func (r *ItemRepository) All() ([]*entities.Item, error) {
	items := make([]*entities.Item, len(r.items))
	copy(items, r.items)
	return items, nil
}

// Active returns active items in catalog order
func (r *ItemRepository) Active() ([]*entities.Item, error) {
	var active []*entities.Item
	for _, item := range r.items {
		if item.Active {
			active = append(active, item)
		}
	}
	return active, nil
}
