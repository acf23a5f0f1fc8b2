package entities

import "time"

// AlertType represents the category of a raised alert
type AlertType int

const (
	AlertLowStock AlertType = iota
)

// String method for AlertType enum
func (t AlertType) String() string {
	switch t {
	case AlertLowStock:
		return "low_stock"
	default:
		return "Unknown"
	}
}

// Alert represents a notification raised against a catalog item. An alert
// stays active until it is explicitly dismissed; while one is active no
// further alert of the same type is raised for the same item.
type Alert struct {
	ID        int
	Type      AlertType
	ItemID    int
	ItemName  string
	Message   string
	CreatedAt time.Time
	Active    bool
}
