package repositories

import (
	"time"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
)

// SaleRepository defines append-only storage for the sales ledger.
// Implementations assign sequential ids starting at 1.
type SaleRepository interface {
	// Save appends the sale and assigns its id
	Save(sale *entities.Sale) (*entities.Sale, error)

	// All returns every sale in recording order
	All() ([]*entities.Sale, error)

	// Since returns sales whose date is at or after the cutoff, in recording order
	Since(cutoff time.Time) ([]*entities.Sale, error)

	// Recent returns up to limit sales, newest first
	Recent(limit int) ([]*entities.Sale, error)
}
