package tabular

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/boredmathematician/tabular_go/shared/helper"
	"github.com/boredmathematician/tabular_go/shared/orderedset"
)

// cellKey is the composite identity of a single cell.
type cellKey[C, R comparable] struct {
	header     C
	identifier R
}

// Table is a two-dimensional associative container. Each cell is addressed
// by a (column header, row identifier) pair; column headers are unique, row
// identifiers are unique, and cell storage is sparse. Cells are nullable:
// a stored null is observably different from a cell that was never written.
//
// Write operations (Set, the bulk adders) validate that the referenced
// column and row exist; the cell-level read operations (Get, GetOrElse,
// Contains) do not, and treat unknown headers or identifiers as "no value".
//
// Column headers and row identifiers iterate in insertion order, which
// makes rendering deterministic.
//
// A Table assumes a single exclusive owner. Callers that share one across
// goroutines must synchronize externally.
type Table[V any, C comparable, R comparable] struct {
	cells       map[cellKey[C, R]]Value[V]
	headers     *orderedset.OrderedSet[C]
	identifiers *orderedset.OrderedSet[R]

	id     string
	logger *zap.Logger
}

// Option configures a Table at construction time.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger attaches a structured logger to the table. Structural
// mutations log at debug level, rejected writes at warn level. The default
// is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New returns an empty table.
func New[V any, C comparable, R comparable](opts ...Option) *Table[V, C, R] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	id := uuid.New().String()
	return &Table[V, C, R]{
		cells:       make(map[cellKey[C, R]]Value[V]),
		headers:     orderedset.New[C](),
		identifiers: orderedset.New[R](),
		id:          id,
		logger:      o.logger.With(zap.String("table_id", id)),
	}
}

// ID returns the unique identity assigned to this table at construction.
// It also tags every log line the table emits.
func (t *Table[V, C, R]) ID() string {
	return t.id
}

// AddColumn adds a new column whose cells are all unset. It reports whether
// the table did not already contain the header; when it did, the call is a
// no-op.
func (t *Table[V, C, R]) AddColumn(header C) bool {
	added := t.headers.Add(header)
	if added {
		t.logger.Debug("column added", zap.Any("header", header))
	}
	return added
}

// AddColumnFrom adds a new column and sets the cell of every existing row
// to the entry of values keyed by its identifier. Rows without an entry are
// left unset; keys that match no existing row are ignored.
//
// It fails with ErrDuplicateIdentifier, leaving the table unchanged, when
// the header already exists.
func (t *Table[V, C, R]) AddColumnFrom(header C, values map[R]Value[V]) error {
	if !t.headers.Add(header) {
		t.logger.Warn("bulk column add rejected", zap.Any("header", header))
		return fmt.Errorf("%w: column %v", ErrDuplicateIdentifier, header)
	}
	for identifier, value := range values {
		if t.identifiers.Contains(identifier) {
			t.cells[cellKey[C, R]{header, identifier}] = value
		}
	}
	t.logger.Debug("column added from values",
		zap.Any("header", header),
		zap.Int("num_values", len(values)),
	)
	return nil
}

// AddRow adds a new row whose cells are all unset. It reports whether the
// table did not already contain the identifier; when it did, the call is a
// no-op.
func (t *Table[V, C, R]) AddRow(identifier R) bool {
	added := t.identifiers.Add(identifier)
	if added {
		t.logger.Debug("row added", zap.Any("identifier", identifier))
	}
	return added
}

// AddRowFrom adds a new row and sets the cell of every existing column to
// the entry of values keyed by its header. Columns without an entry are
// left unset; keys that match no existing column are ignored.
//
// It fails with ErrDuplicateIdentifier, leaving the table unchanged, when
// the identifier already exists.
func (t *Table[V, C, R]) AddRowFrom(identifier R, values map[C]Value[V]) error {
	if !t.identifiers.Add(identifier) {
		t.logger.Warn("bulk row add rejected", zap.Any("identifier", identifier))
		return fmt.Errorf("%w: row %v", ErrDuplicateIdentifier, identifier)
	}
	for header, value := range values {
		if t.headers.Contains(header) {
			t.cells[cellKey[C, R]{header, identifier}] = value
		}
	}
	t.logger.Debug("row added from values",
		zap.Any("identifier", identifier),
		zap.Int("num_values", len(values)),
	)
	return nil
}

// RemoveColumn removes the column and every cell stored under it. It
// reports whether the column existed.
func (t *Table[V, C, R]) RemoveColumn(header C) bool {
	if !t.headers.Remove(header) {
		return false
	}
	for _, identifier := range t.identifiers.Values() {
		delete(t.cells, cellKey[C, R]{header, identifier})
	}
	t.logger.Debug("column removed", zap.Any("header", header))
	return true
}

// RemoveRow removes the row and every cell stored under it. It reports
// whether the row existed.
func (t *Table[V, C, R]) RemoveRow(identifier R) bool {
	if !t.identifiers.Remove(identifier) {
		return false
	}
	for _, header := range t.headers.Values() {
		delete(t.cells, cellKey[C, R]{header, identifier})
	}
	t.logger.Debug("row removed", zap.Any("identifier", identifier))
	return true
}

// ClearColumn sets every occupied cell of the column to null. Unwritten
// cells stay unwritten. It reports whether the column existed, whether or
// not any cell changed.
func (t *Table[V, C, R]) ClearColumn(header C) bool {
	if !t.headers.Contains(header) {
		return false
	}
	for _, identifier := range t.identifiers.Values() {
		t.Clear(header, identifier)
	}
	return true
}

// ClearRow sets every occupied cell of the row to null. Unwritten cells
// stay unwritten. It reports whether the row existed, whether or not any
// cell changed.
func (t *Table[V, C, R]) ClearRow(identifier R) bool {
	if !t.identifiers.Contains(identifier) {
		return false
	}
	for _, header := range t.headers.Values() {
		t.Clear(header, identifier)
	}
	return true
}

// ContainsColumn reports whether the table has a column with this header.
func (t *Table[V, C, R]) ContainsColumn(header C) bool {
	return t.headers.Contains(header)
}

// ContainsRow reports whether the table has a row with this identifier.
func (t *Table[V, C, R]) ContainsRow(identifier R) bool {
	return t.identifiers.Contains(identifier)
}

// ColumnHeaders returns the column headers in insertion order. The slice
// is a copy.
func (t *Table[V, C, R]) ColumnHeaders() []C {
	return t.headers.Values()
}

// RowIdentifiers returns the row identifiers in insertion order. The slice
// is a copy.
func (t *Table[V, C, R]) RowIdentifiers() []R {
	return t.identifiers.Values()
}

// NumColumns returns the number of columns.
func (t *Table[V, C, R]) NumColumns() int {
	return t.headers.Len()
}

// NumRows returns the number of rows.
func (t *Table[V, C, R]) NumRows() int {
	return t.identifiers.Len()
}

// GetColumn returns the value of every known row under the header, null for
// cells that were never written. It fails with ErrNoSuchElement when the
// header is unknown.
func (t *Table[V, C, R]) GetColumn(header C) (map[R]Value[V], error) {
	if !t.headers.Contains(header) {
		return nil, fmt.Errorf("%w: column %v", ErrNoSuchElement, header)
	}
	column := make(map[R]Value[V], t.identifiers.Len())
	for _, identifier := range t.identifiers.Values() {
		column[identifier] = t.Get(header, identifier)
	}
	return column, nil
}

// GetRow returns the value of every known column for the identifier, null
// for cells that were never written. It fails with ErrNoSuchElement when
// the identifier is unknown.
func (t *Table[V, C, R]) GetRow(identifier R) (map[C]Value[V], error) {
	if !t.identifiers.Contains(identifier) {
		return nil, fmt.Errorf("%w: row %v", ErrNoSuchElement, identifier)
	}
	row := make(map[C]Value[V], t.headers.Len())
	for _, header := range t.headers.Values() {
		row[header] = t.Get(header, identifier)
	}
	return row, nil
}

// Get returns the value stored under the pair, or null when none is. It
// never fails: an unknown header or identifier simply has no value.
func (t *Table[V, C, R]) Get(header C, identifier R) Value[V] {
	return t.cells[cellKey[C, R]{header, identifier}]
}

// GetOrElse returns the value stored under the pair when the cell is
// occupied, even when that value is null, and Of(def) otherwise. Unlike
// Get, it distinguishes "no value recorded" from "null recorded".
func (t *Table[V, C, R]) GetOrElse(header C, identifier R, def V) Value[V] {
	if cell, ok := t.cells[cellKey[C, R]{header, identifier}]; ok {
		return cell
	}
	return Of(def)
}

// Set writes the value, null included, under the pair, overwriting any
// previous one. It fails with ErrNoSuchElement when the header or the
// identifier is unknown.
func (t *Table[V, C, R]) Set(header C, identifier R, value Value[V]) error {
	if !t.headers.Contains(header) {
		t.logger.Warn("set rejected", zap.Any("header", header))
		return fmt.Errorf("%w: column %v", ErrNoSuchElement, header)
	}
	if !t.identifiers.Contains(identifier) {
		t.logger.Warn("set rejected", zap.Any("identifier", identifier))
		return fmt.Errorf("%w: row %v", ErrNoSuchElement, identifier)
	}
	t.cells[cellKey[C, R]{header, identifier}] = value
	return nil
}

// Clear sets an occupied cell to null and reports true. On an unoccupied
// cell it is a no-op and reports false. Clearing a cell that already holds
// null still reports true: occupancy, not nullity, is what counts.
func (t *Table[V, C, R]) Clear(header C, identifier R) bool {
	key := cellKey[C, R]{header, identifier}
	if _, ok := t.cells[key]; !ok {
		return false
	}
	t.cells[key] = Null[V]()
	return true
}

// Contains reports whether the cell under the pair is occupied, null values
// included. It never fails, whatever the header or identifier.
func (t *Table[V, C, R]) Contains(header C, identifier R) bool {
	_, ok := t.cells[cellKey[C, R]{header, identifier}]
	return ok
}

// Equal reports whether both tables hold the same headers, the same
// identifiers and the same cells. Cell values compare by deep value
// equality; insertion order does not participate.
func (t *Table[V, C, R]) Equal(other *Table[V, C, R]) bool {
	if t == other {
		return true
	}
	if other == nil {
		return false
	}
	if !t.headers.Equal(other.headers) || !t.identifiers.Equal(other.identifiers) {
		return false
	}
	if len(t.cells) != len(other.cells) {
		return false
	}
	for key, cell := range t.cells {
		otherCell, ok := other.cells[key]
		if !ok || !cellEqual(cell, otherCell) {
			return false
		}
	}
	return true
}

func cellEqual[V any](a, b Value[V]) bool {
	if a.Valid != b.Valid {
		return false
	}
	if !a.Valid {
		return true
	}
	return reflect.DeepEqual(a.V, b.V)
}

// Hash returns an order-independent digest of the headers, identifiers and
// cells, so that equal tables hash alike however they were built. Hashing
// goes through the same text forms rendering uses.
func (t *Table[V, C, R]) Hash() uint64 {
	var h uint64
	for _, header := range t.headers.Values() {
		h ^= xxhash.Sum64String("column:" + helper.Stringify(header))
	}
	for _, identifier := range t.identifiers.Values() {
		h ^= xxhash.Sum64String("row:" + helper.Stringify(identifier))
	}
	for key, cell := range t.cells {
		h ^= xxhash.Sum64String(fmt.Sprintf("cell:%s:%s:%s",
			helper.Stringify(key.header),
			helper.Stringify(key.identifier),
			cell.String(),
		))
	}
	return h
}
