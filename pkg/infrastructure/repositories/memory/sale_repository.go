package memory

import (
	"time"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/repositories"
)

// SaleRepository provides in-memory append-only storage for the sales
// ledger. It is not internally synchronized; the engine serializes access.
type SaleRepository struct {
	sales  []*entities.Sale
	nextID int
}

// NewSaleRepository creates a new in-memory sale repository
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{nextID: 1}
}

// Verify interface compliance
var _ repositories.SaleRepository = (*SaleRepository)(nil)

// Save appends the sale and assigns the next sequential id
func (r *SaleRepository) Save(sale *entities.Sale) (*entities.Sale, error) {
	sale.ID = r.nextID
	r.nextID++
	r.sales = append(r.sales, sale)
	return sale, nil
}

// All returns every sale in recording order
func (r *SaleRepository) All() ([]*entities.Sale, error) {
	sales := make([]*entities.Sale, len(r.sales))
	copy(sales, r.sales)
	return sales, nil
}

// Since returns sales dated at or after the cutoff, in recording order
func (r *SaleRepository) Since(cutoff time.Time) ([]*entities.Sale, error) {
	var recent []*entities.Sale
	for _, sale := range r.sales {
		if !sale.SaleDate.Before(cutoff) {
			recent = append(recent, sale)
		}
	}
	return recent, nil
}

// Recent returns up to limit sales, newest first
func (r *SaleRepository) Recent(limit int) ([]*entities.Sale, error) {
	if limit < 0 {
		limit = 0
	}
	var recent []*entities.Sale
	for i := len(r.sales) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, r.sales[i])
	}
	return recent, nil
}
