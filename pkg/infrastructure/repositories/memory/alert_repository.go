package memory

import (
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/repositories"
)

// AlertRepository provides in-memory alert storage. It is not internally
// synchronized; the engine serializes access to it.
type AlertRepository struct {
	alerts []*entities.Alert
	nextID int
}

// NewAlertRepository creates a new in-memory alert repository
func NewAlertRepository() *AlertRepository {
	return &AlertRepository{nextID: 1}
}

// Verify interface compliance
var _ repositories.AlertRepository = (*AlertRepository)(nil)

// Save stores the alert and assigns the next sequential id
func (r *AlertRepository) Save(alert *entities.Alert) (*entities.Alert, error) {
	alert.ID = r.nextID
	r.nextID++
	r.alerts = append(r.alerts, alert)
	return alert, nil
}

// GetByID returns the alert with the given id
func (r *AlertRepository) GetByID(id int) (*entities.Alert, error) {
	for _, alert := range r.alerts {
		if alert.ID == id {
			return alert, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// HasActive reports whether an active alert of the given type exists for the item
func (r *AlertRepository) HasActive(alertType entities.AlertType, itemID int) (bool, error) {
	for _, alert := range r.alerts {
		if alert.Active && alert.Type == alertType && alert.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

// Active returns active alerts in creation order
func (r *AlertRepository) Active() ([]*entities.Alert, error) {
	var active []*entities.Alert
	for _, alert := range r.alerts {
		if alert.Active {
			active = append(active, alert)
		}
	}
	return active, nil
}
