package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrCatalogItemNotFound indicates no option in the requested catalog has the given id.
	ErrCatalogItemNotFound = errors.New("catalog item not found")
)
