package storage

import "errors"

// Sentinel kinds for persistence errors. Save failures are recoverable: the
// in-memory store stays authoritative, but durability is at risk until the
// next successful save.
var (
	ErrSave    = errors.New("save state failed")
	ErrRestore = errors.New("restore state failed")
)
