package formats

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"datadiff/core/failure"
	"datadiff/core/table"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV decodes comma separated files.
type CSV struct{}

func (CSV) Name() string     { return "csv" }
func (CSV) Kind() table.Kind { return table.Tabular }

// DecodeGrid reads every record. A leading UTF-8 BOM is skipped and records may have
// different lengths.
func (CSV) DecodeGrid(r io.Reader) (table.Grid, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var grid table.Grid
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, failure.Wrap(failure.KindParse, err, "failed to read csv")
		}
		cells := make([]any, len(record))
		for i, v := range record {
			cells[i] = v
		}
		grid = append(grid, cells)
	}

	return grid, nil
}
