package memory

import (
	"testing"
	"time"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
)

func newTestAlert(itemID int) *entities.Alert {
	return &entities.Alert{
		Type:      entities.AlertLowStock,
		ItemID:    itemID,
		ItemName:  "Milk",
		Message:   "Low stock alert: Milk has only 2 units remaining",
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Active:    true,
	}
}

func TestAlertRepository_HasActive(t *testing.T) {
	repo := NewAlertRepository()

	exists, err := repo.HasActive(entities.AlertLowStock, 1)
	if err != nil {
		t.Fatalf("Failed to check alerts: %v", err)
	}
	if exists {
		t.Error("Expected no active alert before saving")
	}

	saved, err := repo.Save(newTestAlert(1))
	if err != nil {
		t.Fatalf("Failed to save alert: %v", err)
	}
	if saved.ID != 1 {
		t.Errorf("Expected id 1, got %d", saved.ID)
	}

	exists, _ = repo.HasActive(entities.AlertLowStock, 1)
	if !exists {
		t.Error("Expected active alert for item 1")
	}

	exists, _ = repo.HasActive(entities.AlertLowStock, 2)
	if exists {
		t.Error("Expected no active alert for item 2")
	}

	saved.Active = false
	exists, _ = repo.HasActive(entities.AlertLowStock, 1)
	if exists {
		t.Error("Expected dismissed alert to no longer count as active")
	}
}

func TestAlertRepository_ActiveOrder(t *testing.T) {
	repo := NewAlertRepository()

	first, _ := repo.Save(newTestAlert(1))
	repo.Save(newTestAlert(2))
	repo.Save(newTestAlert(3))

	first.Active = false

	active, err := repo.Active()
	if err != nil {
		t.Fatalf("Failed to list active alerts: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("Expected 2 active alerts, got %d", len(active))
	}
	if active[0].ItemID != 2 || active[1].ItemID != 3 {
		t.Errorf("Expected creation order, got items %d then %d", active[0].ItemID, active[1].ItemID)
	}
}
