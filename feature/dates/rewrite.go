package dates

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"datadiff/core/failure"
	"datadiff/core/formats"
	"datadiff/core/storage"
	"datadiff/core/utils"
)

// InputLayout is the layout of the requested date.
const InputLayout = "02-01-2006"

var datePattern = regexp.MustCompile(`(\d{2})[-/](\d{2})[-/](\d{4})`)

// Result is a rewritten file.
type Result struct {
	// Name is <new date>-<input name>.csv, or <input name>_updated.csv when nothing changed.
	Name string
	Data []byte
	// Updated counts the rewritten cells.
	Updated int
}

// ParseDate reads a dd-mm-yyyy date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(InputLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, failure.New(failure.KindInvalidInput,
			"invalid date format %q, please enter the date in dd-mm-yyyy format", s)
	}
	return d, nil
}

// RewriteCell replaces the first date in value with date, keeping its separator.
func RewriteCell(value string, date time.Time) (string, string, bool) {
	loc := datePattern.FindStringIndex(value)
	if loc == nil {
		return value, "", false
	}
	sep := value[loc[0]+2 : loc[0]+3]
	formatted := date.Format("02" + sep + "01" + sep + "2006")
	return value[:loc[0]] + formatted + value[loc[1]:], formatted, true
}

// Rewrite reads CSV content named name and rewrites every data cell.
func Rewrite(name string, r io.Reader, date time.Time) (*Result, error) {
	if ext := formats.Extension(name); ext != "csv" {
		return nil, failure.New(failure.KindUnsupportedFileType, "file type %q is not supported, only csv files can be updated", ext)
	}

	grid, err := formats.CSV{}.DecodeGrid(r)
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, failure.New(failure.KindEmptyInput, "%s is empty", name)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	result := &Result{}
	var sample string

	for i, cells := range grid {
		record := make([]string, len(cells))
		for j, cell := range cells {
			s, _ := utils.CellString(cell)
			if i > 0 {
				if updated, formatted, ok := RewriteCell(s, date); ok {
					s = updated
					sample = formatted
					result.Updated++
				}
			}
			record[j] = s
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	safe := storage.SafeName(name)
	base := strings.TrimSuffix(safe, filepath.Ext(safe))
	if sample != "" {
		result.Name = fmt.Sprintf("%s-%s.csv", strings.ReplaceAll(sample, "/", "-"), base)
	} else {
		result.Name = base + "_updated.csv"
	}
	result.Data = buf.Bytes()
	return result, nil
}
