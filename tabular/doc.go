// Package tabular provides a generic in-memory table: a sparse,
// two-dimensional associative container addressed by a (column header,
// row identifier) pair.
//
// # Shape
//
// A Table[V, C, R] owns three things: the set of column headers (type C),
// the set of row identifiers (type R), and a sparse map from (C, R) pairs
// to cell values (type V). Headers and identifiers are unique; removing a
// column or row also purges every cell stored under it.
//
// # Nullability
//
// Cells hold Value[V], which models null explicitly: a cell can be
// unwritten, hold a null, or hold a value, and all three states are
// observable. Contains reports occupancy regardless of nullity; Clear
// turns an occupied cell into an occupied null.
//
// # Strict writes, permissive reads
//
// Set and the bulk adders insist that the referenced column and row exist
// and fail with ErrNoSuchElement or ErrDuplicateIdentifier otherwise. Get,
// GetOrElse and Contains never fail: an unknown header or identifier is
// simply a cell with no value. Callers should keep this asymmetry in mind.
//
// # Concurrency
//
// A Table assumes one exclusive owner and does no locking of its own.
// Wrap access in a mutex to share one across goroutines.
package tabular
