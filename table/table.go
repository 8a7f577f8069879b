package table

import (
	"fmt"
	"strings"
)

// Table is an in-memory worksheet image - a header row of column names and the
// data rows below it, all values as strings. Row order and column order are
// both significant.
type Table struct {
	Header  []string
	Records [][]string
}

func New(header []string, records [][]string) *Table {
	return &Table{
		Header:  header,
		Records: records,
	}
}

// FromValues builds a table from a raw value grid as returned by the Google
// Sheets API - the first row becomes the header, the remaining rows become
// records. Cell values are taken verbatim, without trimming or type coercion.
// An empty grid yields an empty table, not an error.
func FromValues(values [][]interface{}) *Table {
	if len(values) == 0 {
		return &Table{}
	}

	header := make([]string, len(values[0]))
	for i, v := range values[0] {
		header[i] = stringify(v)
	}

	records := make([][]string, 0, len(values)-1)
	for _, row := range values[1:] {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = stringify(v)
		}

		records = append(records, record)
	}

	return &Table{
		Header:  header,
		Records: records,
	}
}

// Columns returns the column names from the header row.
func (t *Table) Columns() []string {
	return t.Header
}

// RowCount returns the number of data rows, excluding the header.
func (t *Table) RowCount() int {
	return len(t.Records)
}

func (t *Table) ColumnCount() int {
	return len(t.Header)
}

// Values exports the table as a value grid (header row followed by the data
// rows) in the row-major form the Google Sheets API expects.
func (t *Table) Values() [][]interface{} {
	values := make([][]interface{}, 0, len(t.Records)+1)
	values = append(values, rowValues(t.Header))

	for _, record := range t.Records {
		values = append(values, rowValues(record))
	}

	return values
}

// RecordValues exports the data rows only, in table row order, without the
// header row.
func (t *Table) RecordValues() [][]interface{} {
	values := make([][]interface{}, 0, len(t.Records))
	for _, record := range t.Records {
		values = append(values, rowValues(record))
	}

	return values
}

func (t *Table) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%v\n", t.Header)
	for _, record := range t.Records {
		fmt.Fprintf(&b, "%v\n", record)
	}

	return b.String()
}

func rowValues(row []string) []interface{} {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}

	return values
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}
