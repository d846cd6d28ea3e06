package engine

import "errors"

var (
	// ErrMissingURI is returned when a resource is registered without a URI.
	ErrMissingURI = errors.New("engine: resource URI is required")

	// ErrDuplicateURI is returned when a URI is registered twice.
	ErrDuplicateURI = errors.New("engine: resource URI already registered")

	// ErrUnknownResource is returned when a request names an unregistered URI.
	ErrUnknownResource = errors.New("engine: unknown resource")

	// ErrMethodNotAllowed is returned when the resource has no handler for
	// the requested method.
	ErrMethodNotAllowed = errors.New("engine: method not allowed")
)
