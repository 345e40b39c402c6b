package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when a lookup expected to match exactly
	// one document produces an empty result.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrExecutingQuery is returned (wrapped) when a find, count or insert
	// against the database fails at the driver level.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrDecodingDocument is returned when decoding a stored document into
	// its model fails.
	ErrDecodingDocument = errors.New("error decoding document")
)
