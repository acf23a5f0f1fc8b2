package memory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
)

func newTestSale(t *testing.T, itemName string, saleDate time.Time) *entities.Sale {
	t.Helper()
	sale, err := entities.NewSale(1, itemName, 1, decimal.NewFromInt(8), decimal.NewFromInt(5), saleDate, "")
	if err != nil {
		t.Fatalf("Failed to create sale: %v", err)
	}
	return sale
}

func TestSaleRepository_SequentialIDs(t *testing.T) {
	repo := NewSaleRepository()
	saleDate := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		saved, err := repo.Save(newTestSale(t, "Milk", saleDate))
		if err != nil {
			t.Fatalf("Failed to save sale: %v", err)
		}
		if saved.ID != i {
			t.Errorf("Expected id %d, got %d", i, saved.ID)
		}
	}
}

func TestSaleRepository_Since(t *testing.T) {
	repo := NewSaleRepository()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	repo.Save(newTestSale(t, "Old", base.AddDate(0, 0, -40)))
	repo.Save(newTestSale(t, "Boundary", base.AddDate(0, 0, -30)))
	repo.Save(newTestSale(t, "Recent", base))

	recent, err := repo.Since(base.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("Failed to filter sales: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 sales in window, got %d", len(recent))
	}
	if recent[0].ItemName != "Boundary" || recent[1].ItemName != "Recent" {
		t.Errorf("Expected cutoff to be inclusive and order preserved, got %s then %s",
			recent[0].ItemName, recent[1].ItemName)
	}
}

func TestSaleRepository_Recent(t *testing.T) {
	repo := NewSaleRepository()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	repo.Save(newTestSale(t, "First", base))
	repo.Save(newTestSale(t, "Second", base.Add(time.Hour)))
	repo.Save(newTestSale(t, "Third", base.Add(2*time.Hour)))

	recent, err := repo.Recent(2)
	if err != nil {
		t.Fatalf("Failed to list recent sales: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 sales, got %d", len(recent))
	}
	if recent[0].ItemName != "Third" || recent[1].ItemName != "Second" {
		t.Errorf("Expected newest first, got %s then %s", recent[0].ItemName, recent[1].ItemName)
	}
}
