package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/repositories"
)

func newTestItem(t *testing.T, name string) *entities.Item {
	t.Helper()
	item, err := entities.NewItem(name, "General", decimal.NewFromInt(5), decimal.NewFromInt(8),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}
	return item
}

func TestItemRepository_SequentialIDs(t *testing.T) {
	repo := NewItemRepository()

	for i := 1; i <= 5; i++ {
		saved, err := repo.Save(newTestItem(t, "Item"))
		if err != nil {
			t.Fatalf("Failed to save item: %v", err)
		}
		if saved.ID != i {
			t.Errorf("Expected id %d, got %d", i, saved.ID)
		}
	}
}

func TestItemRepository_GetByID(t *testing.T) {
	repo := NewItemRepository()

	saved, err := repo.Save(newTestItem(t, "Milk"))
	if err != nil {
		t.Fatalf("Failed to save item: %v", err)
	}

	found, err := repo.GetByID(saved.ID)
	if err != nil {
		t.Fatalf("Failed to get item: %v", err)
	}
	if found.Name != "Milk" {
		t.Errorf("Expected name Milk, got %s", found.Name)
	}

	if _, err := repo.GetByID(99); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestItemRepository_ActiveFiltersSoftDeleted(t *testing.T) {
	repo := NewItemRepository()

	first, _ := repo.Save(newTestItem(t, "Milk"))
	repo.Save(newTestItem(t, "Bread"))

	first.Active = false

	active, err := repo.Active()
	if err != nil {
		t.Fatalf("Failed to list active items: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("Expected 1 active item, got %d", len(active))
	}
	if active[0].Name != "Bread" {
		t.Errorf("Expected Bread, got %s", active[0].Name)
	}

	all, err := repo.All()
	if err != nil {
		t.Fatalf("Failed to list items: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected soft-deleted item to remain in catalog, got %d items", len(all))
	}
}
