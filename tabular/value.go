package tabular

import "github.com/boredmathematician/tabular_go/shared/helper"

// Value is a cell value that may be null. The zero Value is null.
//
// A null Value stored in a Table is not the same thing as no value at all:
// the former occupies a cell, the latter means the cell was never written.
// Table.Contains is the only way to tell the two apart.
type Value[V any] struct {
	V     V
	Valid bool
}

// Of wraps v in a non-null Value.
func Of[V any](v V) Value[V] {
	return Value[V]{V: v, Valid: true}
}

// Null returns the explicit null Value.
func Null[V any]() Value[V] {
	return Value[V]{}
}

// String renders the value the way table cells do: the literal "null" when
// the value is null, the value's text form otherwise.
func (v Value[V]) String() string {
	if !v.Valid {
		return "null"
	}
	return helper.Stringify(v.V)
}
