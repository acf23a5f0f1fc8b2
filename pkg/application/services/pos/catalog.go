package pos

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chibambakasolo-code/BizSensei/pkg/domain/entities"
	"github.com/chibambakasolo-code/BizSensei/pkg/domain/repositories"
)

const (
	searchResultLimit     = 20
	emptyQueryLimit       = 10
	suggestionLimit       = 10
	suggestionMinQueryLen = 2
)

// titleCase normalizes a display name the way item names are stored.
// A fresh caser per call because cases.Caser is stateful.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// AddItem creates a catalog item with the next sequential id and
// initializes its inventory record with the given starting stock. The
// display name is trimmed and title-cased. Price ordering is not checked
// here; callers validate cost against selling price upstream.
func (e *Engine) AddItem(name, category string, costPrice, sellingPrice decimal.Decimal, initialStock int) (entities.Item, error) {
	if initialStock < 0 {
		return entities.Item{}, &ValidationError{Reason: "initial stock cannot be negative"}
	}
	normalized := titleCase(strings.TrimSpace(name))

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	item, err := entities.NewItem(normalized, category, costPrice, sellingPrice, now)
	if err != nil {
		return entities.Item{}, &ValidationError{Reason: err.Error()}
	}

	saved, err := e.items.Save(item)
	if err != nil {
		return entities.Item{}, err
	}

	record, err := e.inventory.GetOrCreate(saved.ID, now)
	if err != nil {
		return entities.Item{}, err
	}
	record.Quantity = initialStock
	record.LastUpdated = now

	return *saved, nil
}

// DeactivateItem soft-deletes an item. The item stays in the catalog so
// its id is never reused, but search, suggestions, and inventory status
// stop reporting it.
func (e *Engine) DeactivateItem(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, err := e.items.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &ItemNotFoundError{ID: id}
		}
		return err
	}
	item.Active = false
	return nil
}

// GetItem returns the item with the given id
func (e *Engine) GetItem(id int) (entities.Item, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	item, err := e.items.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return entities.Item{}, &ItemNotFoundError{ID: id}
		}
		return entities.Item{}, err
	}
	return *item, nil
}

// SearchItems finds active items by name. An empty query returns the first
// items in catalog order; otherwise exact name matches come before
// substring matches, both in catalog order.
func (e *Engine) SearchItems(query string) ([]entities.Item, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	active, err := e.items.Active()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		results := make([]entities.Item, 0, emptyQueryLimit)
		for _, item := range active {
			if len(results) == emptyQueryLimit {
				break
			}
			results = append(results, *item)
		}
		return results, nil
	}

	var exact, partial []entities.Item
	for _, item := range active {
		name := strings.ToLower(item.Name)
		if name == query {
			exact = append(exact, *item)
		} else if strings.Contains(name, query) {
			partial = append(partial, *item)
		}
	}

	results := append(exact, partial...)
	if len(results) > searchResultLimit {
		results = results[:searchResultLimit]
	}
	return results, nil
}

// Suggestions returns distinct active item names containing the query for
// autocomplete. Queries shorter than two characters yield nothing.
func (e *Engine) Suggestions(query string) ([]string, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < suggestionMinQueryLen {
		return nil, nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	active, err := e.items.Active()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var suggestions []string
	for _, item := range active {
		if len(suggestions) == suggestionLimit {
			break
		}
		if strings.Contains(strings.ToLower(item.Name), query) && !seen[item.Name] {
			seen[item.Name] = true
			suggestions = append(suggestions, item.Name)
		}
	}
	return suggestions, nil
}
