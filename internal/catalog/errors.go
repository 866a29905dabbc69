package catalog

import "errors"

// Sentinel kinds for catalog errors. Both abort startup.
var (
	ErrLoadCatalog    = errors.New("load event catalog failed")
	ErrInvalidCatalog = errors.New("invalid event catalog")
)
