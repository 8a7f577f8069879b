package gsheets

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/atseira/gsheets2dataframe/table"
)

// Bridge wraps an authorized session to a single Google Sheets document and
// exposes table-level and cell-level read/write operations over the named
// worksheets within it.
//
// All operations are synchronous blocking network calls. A Bridge does not
// coordinate concurrent callers - resolve-then-write is a read-modify-write
// sequence with no atomicity guarantee, so concurrent use of the same
// instance needs external mutual exclusion.
type Bridge struct {
	api API
}

// NewBridge authorizes a session with the configured credentials and opens
// the spreadsheet identified by spreadsheetId. The session is reused by all
// subsequent calls on the returned instance.
//
// Returns an InitializationError wrapping the underlying cause if the
// credentials cannot be loaded, the session cannot be authorized or the
// spreadsheet cannot be opened.
func NewBridge(ctx context.Context, cfg Config, spreadsheetId string) (*Bridge, error) {
	client, err := cfg.client(ctx)
	if err != nil {
		return nil, &InitializationError{Err: err}
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, &InitializationError{Err: err}
	}

	api := &googleAPI{
		service:       service,
		spreadsheetId: spreadsheetId,
	}

	if _, err := api.Worksheets(ctx); err != nil {
		return nil, &InitializationError{Err: err}
	}

	return &Bridge{
		api: api,
	}, nil
}

// Worksheet resolves a worksheet by exact name. A missing worksheet is a
// normal outcome, returned as found=false (with a diagnostic notice), not an
// error - the error return is reserved for transport failures.
func (b *Bridge) Worksheet(ctx context.Context, name string) (Worksheet, bool, error) {
	worksheets, err := b.api.Worksheets(ctx)
	if err != nil {
		return Worksheet{}, false, err
	}

	for _, worksheet := range worksheets {
		if worksheet.Title == name {
			return worksheet, true, nil
		}
	}

	warnf("there is no '%s' worksheet in the spreadsheet", name)

	return Worksheet{}, false, nil
}

// WriteTable writes a table into the named worksheet:
//
//   - if the worksheet does not exist it is created first, sized to the
//     table's column count
//   - if the worksheet is empty, the header row and all data rows are written
//     as one bulk update starting at A1
//   - otherwise the data rows are appended after the existing content,
//     without the header row
//
// Appended rows keep the table's own cell order - they are not matched to the
// worksheet's existing column headers, so a worksheet whose column order
// differs from the table's will end up with misaligned rows.
//
// Emptiness is re-evaluated on every call and the resolve/read/write sequence
// is not transactional - a partial remote failure is surfaced as-is, with no
// compensation.
func (b *Bridge) WriteTable(ctx context.Context, t *table.Table, name string) error {
	worksheet, ok, err := b.Worksheet(ctx, name)
	if err != nil {
		return err
	}

	if !ok {
		columns := int64(t.ColumnCount())
		if columns < 1 {
			columns = 1
		}

		if err := b.api.AddWorksheet(ctx, name, 1, columns); err != nil {
			return err
		}

		if worksheet, ok, err = b.Worksheet(ctx, name); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("unable to resolve worksheet '%s' after creating it", name)
		}
	}

	rows, err := b.api.Get(ctx, rangeRef(worksheet.Title, ""))
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return b.api.Update(ctx, rangeRef(worksheet.Title, "A1"), t.Values())
	}

	return b.api.Append(ctx, rangeRef(worksheet.Title, ""), t.RecordValues())
}

// ReadTable reads the named worksheet into a table - the first row becomes
// the column names, the remaining rows become records, all values verbatim as
// strings. Returns nil (and no error) if the worksheet does not exist. A
// worksheet with no rows at all yields an empty table.
func (b *Bridge) ReadTable(ctx context.Context, name string) (*table.Table, error) {
	worksheet, ok, err := b.Worksheet(ctx, name)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	rows, err := b.api.Get(ctx, rangeRef(worksheet.Title, ""))
	if err != nil {
		return nil, err
	}

	return table.FromValues(rows), nil
}

// Column reads all values in a column (header cell included) top to bottom.
// Returns nil (and no error) if the worksheet does not exist and
// ErrInvalidAddress if the column letters are malformed.
func (b *Bridge) Column(ctx context.Context, name string, letters string) ([]string, error) {
	if _, err := ColumnIndex(letters); err != nil {
		return nil, err
	}

	worksheet, ok, err := b.Worksheet(ctx, name)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	area := rangeRef(worksheet.Title, fmt.Sprintf("%s:%s", letters, letters))
	rows, err := b.api.Get(ctx, area)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(rows))
	for _, row := range rows {
		v := ""
		if len(row) > 0 {
			v = fmt.Sprintf("%v", row[0])
		}

		values = append(values, v)
	}

	return values, nil
}

// Cell reads a single cell by A1-style reference e.g. "B7", returning its raw
// string value. found is false if the worksheet does not exist. A blank cell
// yields whatever the transport returns for it (an empty string). Returns
// ErrInvalidAddress if the cell reference is malformed.
func (b *Bridge) Cell(ctx context.Context, name string, ref string) (value string, found bool, err error) {
	if !cell.MatchString(ref) {
		return "", false, fmt.Errorf("%w: invalid cell reference '%s'", ErrInvalidAddress, ref)
	}

	worksheet, ok, err := b.Worksheet(ctx, name)
	if err != nil {
		return "", false, err
	}

	if !ok {
		return "", false, nil
	}

	rows, err := b.api.Get(ctx, rangeRef(worksheet.Title, ref))
	if err != nil {
		return "", false, err
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", true, nil
	}

	return fmt.Sprintf("%v", rows[0][0]), true, nil
}

// FirstColumn reads column "A" of the named worksheet.
func (b *Bridge) FirstColumn(ctx context.Context, name string) ([]string, error) {
	return b.Column(ctx, name, "A")
}

// FirstCell reads cell "A1" of the named worksheet.
func (b *Bridge) FirstCell(ctx context.Context, name string) (string, bool, error) {
	return b.Cell(ctx, name, "A1")
}

var logger = log.Printf

// SetLogger redirects the diagnostic notices (missing worksheets, token cache
// failures) emitted by this package. The default logs to the standard
// library's log package.
func SetLogger(f func(format string, v ...any)) {
	logger = f
}

func warnf(format string, v ...any) {
	logger("%-5s %s", "WARN", fmt.Sprintf(format, v...))
}
