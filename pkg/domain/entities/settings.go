package entities

// Settings represents the process-wide business configuration. The low
// stock threshold drives alerting; the currency symbol drives free-text
// sale parsing.
type Settings struct {
	LowStockThreshold int
	Currency          string
	BusinessName      string
	BusinessType      string
	SetupCompleted    bool
}

// DefaultSettings returns the configuration used before business setup runs
func DefaultSettings() Settings {
	return Settings{
		LowStockThreshold: 5,
		Currency:          "K",
	}
}
