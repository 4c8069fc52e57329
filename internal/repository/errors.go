package repository

import "errors"

// ErrNotFound is returned when a requested document does not exist in the
// store. Handlers map it to 404 so transient store failures stay 500.
var ErrNotFound = errors.New("not found")
