package sheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boredmathematician/tabular_go/sheet"
	"github.com/boredmathematician/tabular_go/tabular"
)

func buildGrades(t *testing.T) *tabular.Table[string, string, string] {
	t.Helper()
	tbl := tabular.New[string, string, string]()
	tbl.AddColumn("math")
	tbl.AddColumn("physics")
	tbl.AddRow("alice")
	tbl.AddRow("bob")
	require.NoError(t, tbl.Set("math", "alice", tabular.Of("90")))
	require.NoError(t, tbl.Set("physics", "alice", tabular.Of("85")))
	require.NoError(t, tbl.Set("math", "bob", tabular.Of("70")))
	// physics/bob stays unwritten: the table is sparse
	return tbl
}

func TestXLSX_RoundTrip(t *testing.T) {
	tbl := buildGrades(t)

	var buf bytes.Buffer
	require.NoError(t, sheet.WriteXLSX(&buf, "grades", "student", tbl))

	got, err := sheet.ReadXLSX(&buf, "grades")
	require.NoError(t, err)

	assert.True(t, got.Equal(tbl))
	assert.False(t, got.Contains("physics", "bob"), "unwritten cells stay unwritten")
}

func TestXLSX_NullCellReadsBackAsUnwritten(t *testing.T) {
	tbl := buildGrades(t)
	require.NoError(t, tbl.Set("math", "bob", tabular.Null[string]()))

	var buf bytes.Buffer
	require.NoError(t, sheet.WriteXLSX(&buf, "grades", "student", tbl))

	got, err := sheet.ReadXLSX(&buf, "grades")
	require.NoError(t, err)

	assert.True(t, got.ContainsRow("bob"))
	assert.False(t, got.Contains("math", "bob"),
		"spreadsheets cannot tell a stored null from no value")
}

func TestXLSX_MissingSheetFails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sheet.WriteXLSX(&buf, "grades", "student", buildGrades(t)))

	_, err := sheet.ReadXLSX(&buf, "no_such_sheet")
	assert.Error(t, err)
}

func TestCSV_RoundTrip(t *testing.T) {
	tbl := buildGrades(t)

	var buf bytes.Buffer
	require.NoError(t, sheet.WriteCSV(&buf, "student", tbl))

	got, err := sheet.ReadCSV(&buf)
	require.NoError(t, err)
	assert.True(t, got.Equal(tbl))
}

func TestCSV_WriteLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sheet.WriteCSV(&buf, "student", buildGrades(t)))

	want := strings.Join([]string{
		"student,math,physics",
		"alice,90,85",
		"bob,70,",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestCSV_ReadHandRolledGrid(t *testing.T) {
	in := strings.Join([]string{
		"day,alice,bob",
		"mon,present,",
		"tue,,present",
	}, "\n")

	got, err := sheet.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob"}, got.ColumnHeaders())
	assert.Equal(t, []string{"mon", "tue"}, got.RowIdentifiers())
	assert.Equal(t, tabular.Of("present"), got.Get("alice", "mon"))
	assert.False(t, got.Contains("alice", "tue"))
}

func TestCSV_DuplicateColumnFails(t *testing.T) {
	in := "title,a,a\nr1,1,2\n"

	_, err := sheet.ReadCSV(strings.NewReader(in))
	assert.ErrorIs(t, err, tabular.ErrDuplicateIdentifier)
}

func TestCSV_EmptyInputYieldsEmptyTable(t *testing.T) {
	got, err := sheet.ReadCSV(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, 0, got.NumColumns())
	assert.Equal(t, 0, got.NumRows())
}
