package gsheets

import (
	"context"

	"google.golang.org/api/sheets/v4"
)

// Worksheet is a resolved reference to a named sheet within the open
// spreadsheet. It is re-resolved by name on every operation - handles are
// never cached across calls.
type Worksheet struct {
	ID    int64
	Title string
}

// API is the boundary to the Google Sheets transport. The sheets/v4 service
// uses [][]interface{} for cell values; that shape is kept confined to this
// interface and converted at the edges.
type API interface {
	// Worksheets lists the worksheets of the open spreadsheet in document
	// order.
	Worksheets(ctx context.Context) ([]Worksheet, error)

	// AddWorksheet creates a new worksheet with the given grid size.
	AddWorksheet(ctx context.Context, title string, rows, columns int64) error

	// Get reads the values in an A1-notation range.
	Get(ctx context.Context, area string) ([][]interface{}, error)

	// Update bulk-writes a value grid starting at the top-left cell of an
	// A1-notation range.
	Update(ctx context.Context, area string, values [][]interface{}) error

	// Append appends rows after the last populated row of an A1-notation
	// range.
	Append(ctx context.Context, area string, values [][]interface{}) error
}

type googleAPI struct {
	service       *sheets.Service
	spreadsheetId string
}

func (g *googleAPI) Worksheets(ctx context.Context) ([]Worksheet, error) {
	spreadsheet, err := g.service.Spreadsheets.Get(g.spreadsheetId).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	worksheets := make([]Worksheet, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		worksheets = append(worksheets, Worksheet{
			ID:    sheet.Properties.SheetId,
			Title: sheet.Properties.Title,
		})
	}

	return worksheets, nil
}

func (g *googleAPI) AddWorksheet(ctx context.Context, title string, rows, columns int64) error {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: title,
						GridProperties: &sheets.GridProperties{
							RowCount:    rows,
							ColumnCount: columns,
						},
					},
				},
			},
		},
	}

	if _, err := g.service.Spreadsheets.BatchUpdate(g.spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

func (g *googleAPI) Get(ctx context.Context, area string) ([][]interface{}, error) {
	response, err := g.service.Spreadsheets.Values.Get(g.spreadsheetId, area).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return response.Values, nil
}

func (g *googleAPI) Update(ctx context.Context, area string, values [][]interface{}) error {
	rq := sheets.ValueRange{
		Range:  area,
		Values: values,
	}

	if _, err := g.service.Spreadsheets.Values.Update(g.spreadsheetId, area, &rq).ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

func (g *googleAPI) Append(ctx context.Context, area string, values [][]interface{}) error {
	rq := sheets.ValueRange{
		Values: values,
	}

	if _, err := g.service.Spreadsheets.Values.Append(g.spreadsheetId, area, &rq).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}
