package mockdata

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"datadiff/core/failure"

	"github.com/xuri/excelize/v2"
)

// Format is a download format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// sheetName names the single worksheet of XLSX exports.
const sheetName = "Generated Data"

// ParseFormat accepts csv, json, xlsx and excel.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", failure.New(failure.KindUnsupportedFileType, "unsupported download format %q", s)
	}
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// FileName returns test-data-<yyyymmddHHMMSS>.<ext>.
func (f Format) FileName(now time.Time) string {
	return fmt.Sprintf("test-data-%s.%s", now.Format("20060102150405"), f)
}

// Encode renders ds in format f.
func Encode(ds *Dataset, f Format) ([]byte, error) {
	switch f {
	case FormatCSV:
		return encodeCSV(ds)
	case FormatJSON:
		return encodeJSON(ds)
	case FormatXLSX:
		return encodeXLSX(ds)
	default:
		return nil, failure.New(failure.KindUnsupportedFileType, "unsupported download format %q", f)
	}
}

func encodeCSV(ds *Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ds.Columns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	record := make([]string, len(ds.Columns))
	for _, row := range ds.Rows {
		for i, col := range ds.Columns {
			record[i] = formatValue(row[col])
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeJSON(ds *Dataset) ([]byte, error) {
	data, err := json.MarshalIndent(ds.Rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rows: %w", err)
	}
	return data, nil
}

func encodeXLSX(ds *Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range ds.Columns {
		if err := setCell(f, i+1, 1, col); err != nil {
			return nil, err
		}
	}
	for r, row := range ds.Rows {
		for i, col := range ds.Columns {
			if err := setCell(f, i+1, r+2, row[col]); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to address cell: %w", err)
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}

// formatValue renders a generated value for text output.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
