package pos

import (
	"strings"
	"sync"
	"time"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/repositories"
	"github.com/chibambakasolo-code/BizSensei/pkg/infrastructure/config"
)

// Config holds the tunable parts of the engine
type Config struct {
	// Settings is the initial business configuration; zero value means defaults
	Settings entities.Settings
	// Categories maps business-type ids to their ordered category lists
	Categories map[string][]string
	// Clock supplies timestamps; nil means time.Now
	Clock func() time.Time
}

// Engine is the point-of-sale core: catalog, inventory ledger, sales
// ledger, alerting, analytics, and free-text sale parsing. A single
// read-write mutex serializes every mutation so a recorded sale's
// check-append-decrement-alert sequence is atomic; queries share the
// read lock and never observe a partially applied sale.
type Engine struct {
	mu sync.RWMutex

	items     repositories.ItemRepository
	sales     repositories.SaleRepository
	inventory repositories.InventoryRepository
	alerts    repositories.AlertRepository

	settings   entities.Settings
	categories map[string][]string
	// active category list shown on item forms, switched by business setup
	activeCategories []string

	clock func() time.Time
}

// NewEngine creates an engine with default settings over the provided repositories
func NewEngine(items repositories.ItemRepository, sales repositories.SaleRepository,
	inventory repositories.InventoryRepository, alerts repositories.AlertRepository) *Engine {
	return NewEngineWithConfig(items, sales, inventory, alerts, Config{})
}

// NewEngineWithConfig creates an engine with custom configuration
func NewEngineWithConfig(items repositories.ItemRepository, sales repositories.SaleRepository,
	inventory repositories.InventoryRepository, alerts repositories.AlertRepository, cfg Config) *Engine {

	settings := cfg.Settings
	if settings == (entities.Settings{}) {
		settings = entities.DefaultSettings()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	categories := cfg.Categories
	if categories == nil {
		categories = make(map[string][]string)
	}

	return &Engine{
		items:            items,
		sales:            sales,
		inventory:        inventory,
		alerts:           alerts,
		settings:         settings,
		categories:       categories,
		activeCategories: config.DefaultCategories(),
		clock:            clock,
	}
}

// Settings returns a copy of the current business configuration
func (e *Engine) Settings() entities.Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

// UpdateSettings changes the low-stock threshold and currency symbol
func (e *Engine) UpdateSettings(lowStockThreshold int, currency string) error {
	if lowStockThreshold < 0 {
		return &ValidationError{Reason: "low stock threshold cannot be negative"}
	}
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return &ValidationError{Reason: "currency symbol cannot be empty"}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.LowStockThreshold = lowStockThreshold
	e.settings.Currency = currency
	return nil
}

// SetupBusiness records the business name and type, marks setup as
// completed, and switches the active category list to the type's
// categories. Unknown types fall back to the generic list.
func (e *Engine) SetupBusiness(businessName, businessType string) error {
	businessName = strings.TrimSpace(businessName)
	if businessName == "" {
		return &ValidationError{Reason: "business name cannot be empty"}
	}
	businessType = strings.ToLower(strings.TrimSpace(businessType))
	if businessType == "" {
		return &ValidationError{Reason: "business type cannot be empty"}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.BusinessName = businessName
	e.settings.BusinessType = businessType
	e.settings.SetupCompleted = true

	if cats, ok := e.categories[businessType]; ok {
		e.activeCategories = append([]string(nil), cats...)
	} else {
		e.activeCategories = config.DefaultCategories()
	}
	return nil
}

// SetupCompleted reports whether business setup has run
func (e *Engine) SetupCompleted() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings.SetupCompleted
}

// Categories returns the category list for the configured business type
func (e *Engine) Categories() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.activeCategories...)
}

// BusinessTypes returns the static directory of supported business types
func (e *Engine) BusinessTypes() []config.BusinessType {
	return config.BusinessTypes()
}
