package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ToTSV writes the table to f as tab-separated values, header row first.
func (t *Table) ToTSV(f io.Writer) error {
	if len(t.Header) == 0 {
		return fmt.Errorf("missing/invalid header row")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write(t.Header)
	for _, record := range t.Records {
		w.Write(record)
	}

	w.Flush()

	return w.Error()
}

// FromTSV reads tab-separated values from f, taking the first row as the
// header and the remaining rows as records.
func FromTSV(f io.Reader) (*Table, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("missing/invalid header row")
	}

	return &Table{
		Header:  rows[0],
		Records: rows[1:],
	}, nil
}
