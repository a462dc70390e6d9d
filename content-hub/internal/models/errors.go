package models

import "errors"

var (
	// ErrNotFound is returned when an entity does not exist (or is not
	// visible to the caller).
	ErrNotFound = errors.New("resource not found")

	// ErrNoFieldsToUpdate is returned for an update draft with no fields set.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrUnknownResource is returned for a resource name outside the catalog.
	ErrUnknownResource = errors.New("unknown resource")

	// ErrInvalidSite is returned for a site id outside the closed set.
	ErrInvalidSite = errors.New("invalid site")
)
