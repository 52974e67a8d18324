package repositories

import "errors"

// ErrNotFound is returned when a lookup or update matches no document.
// Callers use errors.Is to tell a miss apart from a store failure.
var ErrNotFound = errors.New("document not found")
