package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrUnitNotFound          = errors.New("unit not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrMalformedData         = errors.New("malformed data")
	ErrInvalidInput          = errors.New("invalid input")
)
