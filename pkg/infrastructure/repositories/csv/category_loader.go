package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Loader handles loading the business-type category table from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadCategories loads the business-type to category-list mapping from a
// CSV file. Rows are (business_type, category) pairs; category order within
// a business type follows row order.
func (l *Loader) LoadCategories(filename string) (map[string][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open categories file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read categories CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("categories CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"business_type", "category"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("categories CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	categories := make(map[string][]string)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("categories CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		businessType := strings.ToLower(strings.TrimSpace(record[0]))
		category := strings.TrimSpace(record[1])
		if businessType == "" {
			return nil, fmt.Errorf("categories CSV row %d: business_type cannot be empty", i+2)
		}
		if category == "" {
			return nil, fmt.Errorf("categories CSV row %d: category cannot be empty", i+2)
		}

		categories[businessType] = append(categories[businessType], category)
	}

	return categories, nil
}

// validateHeader checks that the CSV header matches the expected columns
func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return false
		}
	}
	return true
}
