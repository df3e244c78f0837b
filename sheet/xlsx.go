// Package sheet moves tables in and out of spreadsheet formats. A table
// occupies a rectangular grid: the first row carries the column headers
// behind a leading title cell, the first column carries the row
// identifiers, and every other cell holds a value.
//
// Spreadsheets have no notion of an occupied-but-null cell, so stored
// nulls and never-written cells both leave their grid cell empty, and an
// empty grid cell reads back as "never written". Everything else round
// trips.
package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/boredmathematician/tabular_go/shared/helper"
	"github.com/boredmathematician/tabular_go/tabular"
)

// WriteXLSX lays the table out on a single worksheet of a fresh workbook
// and writes the workbook to w.
func WriteXLSX[V any, C comparable, R comparable](
	w io.Writer,
	sheetName, tableHeader string,
	t *tabular.Table[V, C, R],
) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	headers := t.ColumnHeaders()
	identifiers := t.RowIdentifiers()

	if err := setCell(f, sheetName, 1, 1, tableHeader); err != nil {
		return err
	}
	for i, header := range headers {
		if err := setCell(f, sheetName, i+2, 1, helper.Stringify(header)); err != nil {
			return err
		}
	}
	for j, identifier := range identifiers {
		if err := setCell(f, sheetName, 1, j+2, helper.Stringify(identifier)); err != nil {
			return err
		}
		for i, header := range headers {
			cell := t.Get(header, identifier)
			if !cell.Valid {
				continue
			}
			if err := setCell(f, sheetName, i+2, j+2, cell.V); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ReadXLSX ingests the named worksheet of the workbook read from r into a
// string-valued table. The title cell at the top left is discarded. Rows
// whose identifier cell is empty are skipped; a repeated column header or
// row identifier fails with tabular.ErrDuplicateIdentifier.
func ReadXLSX(r io.Reader, sheetName string) (*tabular.Table[string, string, string], error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheetName, err)
	}
	return fromGrid(rows)
}

func setCell(f *excelize.File, sheetName string, col, row int, value any) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to address cell (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheetName, name, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", name, err)
	}
	return nil
}

// fromGrid builds a table from a header row plus identifier-prefixed value
// rows, the shape both spreadsheet readers produce.
func fromGrid(rows [][]string) (*tabular.Table[string, string, string], error) {
	t := tabular.New[string, string, string]()
	if len(rows) == 0 {
		return t, nil
	}

	headerRow := rows[0]
	var headers []string // positional; "" marks a headerless grid column
	for i := 1; i < len(headerRow); i++ {
		header := headerRow[i]
		if header != "" && !t.AddColumn(header) {
			return nil, fmt.Errorf("%w: column %v", tabular.ErrDuplicateIdentifier, header)
		}
		headers = append(headers, header)
	}

	for _, row := range rows[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		identifier := row[0]
		if !t.AddRow(identifier) {
			return nil, fmt.Errorf("%w: row %v", tabular.ErrDuplicateIdentifier, identifier)
		}
		for i, text := range row[1:] {
			if i >= len(headers) || headers[i] == "" || text == "" {
				continue
			}
			if err := t.Set(headers[i], identifier, tabular.Of(text)); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}
