package store

import "errors"

// ErrNotFound is returned by mutations that reference a missing entity
// id. Lookups signal absence through an ok bool instead; mutations need
// the explicit error so callers can tell a merged update from a no-op.
var ErrNotFound = errors.New("not found")
