package tabular

import (
	"fmt"
	"strings"

	"github.com/boredmathematician/tabular_go/shared/helper"
)

// DefaultCellWidth is the cell width String uses.
const DefaultCellWidth = 20

// Representation renders the table as a fixed-width boxed grid, one line
// per row. The top-left cell holds tableHeader, the rest of the first line
// holds the column headers, and every following line starts with its row
// identifier. Cell text is the value's string form, "null" for a stored
// null, empty for a cell that was never written; text longer than width is
// cut to width-3 characters plus an ellipsis, shorter text is left-padded
// with spaces to exactly width. Width must be at least 4.
//
// A table with no columns or no rows renders as a one-line diagnostic
// reporting the counts instead of an empty grid.
func (t *Table[V, C, R]) Representation(width int, tableHeader string) string {
	if t.headers.Len() == 0 || t.identifiers.Len() == 0 {
		return fmt.Sprintf(
			"Table has %d Columns and %d Rows. Add more data to visualize the Table",
			t.headers.Len(), t.identifiers.Len(),
		)
	}

	headers := t.headers.Values()
	identifiers := t.identifiers.Values()

	unit := "+" + strings.Repeat("-", width)
	separator := strings.Repeat(unit, len(headers)+1) + "+"

	var b strings.Builder
	b.WriteString(separator)
	b.WriteString("\n|")
	b.WriteString(pad(tableHeader, width))
	for _, header := range headers {
		b.WriteString("|")
		b.WriteString(pad(helper.Stringify(header), width))
	}
	b.WriteString("|\n")
	b.WriteString(separator)
	for _, identifier := range identifiers {
		b.WriteString("\n|")
		b.WriteString(pad(helper.Stringify(identifier), width))
		for _, header := range headers {
			b.WriteString("|")
			b.WriteString(pad(t.cellText(header, identifier), width))
		}
		b.WriteString("|")
	}
	b.WriteString("\n")
	b.WriteString(separator)
	return b.String()
}

// String renders the table at DefaultCellWidth with an empty table header.
func (t *Table[V, C, R]) String() string {
	return t.Representation(DefaultCellWidth, "")
}

// cellText is the rendered form of one cell: empty for an unoccupied cell,
// Value.String otherwise.
func (t *Table[V, C, R]) cellText(header C, identifier R) string {
	cell, ok := t.cells[cellKey[C, R]{header, identifier}]
	if !ok {
		return ""
	}
	return cell.String()
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return strings.Repeat(" ", width-len(runes)) + s
}
