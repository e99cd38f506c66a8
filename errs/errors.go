// Package errs defines the sentinel errors shared across inikit packages.
//
// Callers match these with errors.Is; the packages that raise them wrap the
// sentinel with fmt.Errorf("%w: ...") to attach the offending name or value.
package errs

import "errors"

var (
	// ErrSourceUnavailable indicates the configuration source could not be
	// obtained (missing file, unreadable stream, corrupted compressed data).
	// The wrapped message carries the underlying system reason.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrSectionNotFound indicates a section-scoped operation named a section
	// that does not exist in the document.
	ErrSectionNotFound = errors.New("section not found")

	// ErrKeyNotFound indicates a lookup named a key that does not exist in
	// the requested scope.
	ErrKeyNotFound = errors.New("key not found")

	// ErrMissingParameter indicates a required string argument was empty.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrValueTooLarge indicates a value parsed numerically but overflows the
	// requested type.
	ErrValueTooLarge = errors.New("value too large")

	// ErrValueTooSmall indicates a value parsed numerically but underflows
	// the requested type.
	ErrValueTooSmall = errors.New("value too small")

	// ErrNotConvertible indicates a value is present but cannot be parsed as
	// the requested type at all.
	ErrNotConvertible = errors.New("value not convertible")

	// ErrUnsupportedCompression indicates an unknown compression type was
	// requested from the source codec factory.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
