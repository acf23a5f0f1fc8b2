package repositories

import "github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"

// AlertRepository defines storage for alerts. Implementations assign
// sequential ids starting at 1 and preserve creation order.
type AlertRepository interface {
	// Save stores the alert and assigns its id
	Save(alert *entities.Alert) (*entities.Alert, error)

	// GetByID returns the alert or ErrNotFound
	GetByID(id int) (*entities.Alert, error)

	// HasActive reports whether an active alert of the given type exists for the item
	HasActive(alertType entities.AlertType, itemID int) (bool, error)

	// Active returns active alerts in creation order
	Active() ([]*entities.Alert, error)
}
