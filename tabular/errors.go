package tabular

import "errors"

var (
	// ErrDuplicateIdentifier reports a bulk add whose column header or row
	// identifier is already present. The table is left unchanged.
	ErrDuplicateIdentifier = errors.New("identifier already exists in this table")

	// ErrNoSuchElement reports an operation that referenced a column header
	// or row identifier the table does not know about.
	ErrNoSuchElement = errors.New("no such element in this table")
)
