package repositories

import "github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"

// ItemRepository defines storage for catalog items. Implementations assign
// sequential ids starting at 1 and preserve catalog (insertion) order.
type ItemRepository interface {
	// Save stores the item and assigns its id
	Save(item *entities.Item) (*entities.Item, error)

	// GetByID returns the item or ErrNotFound
	GetByID(id int) (*entities.Item, error)

	// All returns every item in catalog order
	All() ([]*entities.Item, error)

	// Active returns active items in catalog order
	Active() ([]*entities.Item, error)
}
