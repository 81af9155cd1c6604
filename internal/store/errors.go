package store

import "errors"

var (
	// ErrNotFound is returned by Get for a path no node was written to.
	ErrNotFound = errors.New("node not found")

	// ErrVersionConflict is returned by Put when the expected version
	// does not match the node's current version. The write changed
	// nothing; the caller re-reads and decides how to proceed.
	ErrVersionConflict = errors.New("version conflict")

	// ErrEmptyPath is returned when an operation receives no segments.
	ErrEmptyPath = errors.New("empty node path")
)

// Database-level errors wrapping failures of the relay's SQL node
// repository. Callers match with [errors.Is].
var (
	ErrExecutingQuery       = errors.New("error executing query")
	ErrBeginningTransaction = errors.New("error beginning transaction")
	ErrCommitingTransaction = errors.New("error commiting transaction")
	ErrScanningRow          = errors.New("error scanning row")
	ErrScanningRows         = errors.New("error scanning rows")
)
