package formats

import (
	"io"

	"datadiff/core/failure"
	"datadiff/core/table"

	"github.com/xuri/excelize/v2"
)

// XLSX decodes the first worksheet of an Excel workbook.
type XLSX struct{}

func (XLSX) Name() string     { return "xlsx" }
func (XLSX) Kind() table.Kind { return table.Tabular }

// DecodeGrid returns the displayed cell values of the first sheet.
func (XLSX) DecodeGrid(r io.Reader) (table.Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, failure.Wrap(failure.KindParse, err, "failed to open workbook")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, failure.New(failure.KindParse, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, failure.Wrap(failure.KindParse, err, "failed to read sheet %q", sheets[0])
	}

	grid := make(table.Grid, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		grid[i] = cells
	}
	return grid, nil
}
