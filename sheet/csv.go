package sheet

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/boredmathematician/tabular_go/shared/helper"
	"github.com/boredmathematician/tabular_go/tabular"
)

// WriteCSV writes the table to w in the same grid shape WriteXLSX uses:
// a header record led by tableHeader, then one record per row led by its
// identifier. Null and never-written cells both emit an empty field.
func WriteCSV[V any, C comparable, R comparable](
	w io.Writer,
	tableHeader string,
	t *tabular.Table[V, C, R],
) error {
	cw := csv.NewWriter(w)

	headers := t.ColumnHeaders()
	record := make([]string, 0, len(headers)+1)
	record = append(record, tableHeader)
	for _, header := range headers {
		record = append(record, helper.Stringify(header))
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("failed to write header record: %w", err)
	}

	for _, identifier := range t.RowIdentifiers() {
		record = record[:0]
		record = append(record, helper.Stringify(identifier))
		for _, header := range headers {
			cell := t.Get(header, identifier)
			if cell.Valid {
				record = append(record, helper.Stringify(cell.V))
			} else {
				record = append(record, "")
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record for row %v: %w", identifier, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV ingests CSV data in the grid shape WriteCSV emits into a
// string-valued table, under the same rules as ReadXLSX.
func ReadCSV(r io.Reader) (*tabular.Table[string, string, string], error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return fromGrid(rows)
}
