package repositories

import "errors"

// ErrNotFound is returned when a lookup misses so callers can map it to
// their own typed not-found errors.
var ErrNotFound = errors.New("record not found")
