package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoActiveEvent  = errors.New("no active event")
	ErrMissingCatalog = errors.New("event catalog is required")
)
