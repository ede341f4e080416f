package table

import (
	"strconv"
	"strings"

	"datadiff/core/failure"
	"datadiff/core/utils"

	"golang.org/x/text/unicode/norm"
)

// Grid is the decoded form of a tabular source: a rectangular-ish block of cells.
// The header is one of the first rows; Normalize decides which.
type Grid [][]any

// maxHeaderRetries is how many rows below the first one may be tried as header.
const maxHeaderRetries = 2

// placeholderPrefix is the auto-generated header spreadsheet tools give unnamed columns.
const placeholderPrefix = "Unnamed:"

// Normalize converts a decoded grid into a Tabular table.
//
// The first row is used as header unless more than half of its cells are placeholders
// (blank or "Unnamed: N"); then the next row is tried, up to two retries. If every attempt
// is still majority-placeholder, the attempt with the fewest placeholders wins and its
// placeholder columns are dropped. Otherwise placeholder columns are kept, blank ones
// named "Unnamed: <index>". Duplicate names get ".1", ".2" suffixes.
// Records with no cells at all are skipped; records whose cells are all null are kept.
func Normalize(grid Grid) (*Table, error) {
	headerRow, majority, ok := pickHeaderRow(grid)
	if !ok {
		return nil, failure.New(failure.KindParse, "no header row found")
	}

	header := grid[headerRow]
	var (
		keep    []int
		columns []string
		seen    = make(map[string]int)
	)
	for i, cell := range header {
		name := headerName(cell)
		if isPlaceholder(name) {
			if majority {
				continue
			}
			if name == "" {
				name = placeholderPrefix + " " + strconv.Itoa(i)
			}
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = uniqueName(name, n+1, seen)
		}
		seen[name] = 0
		keep = append(keep, i)
		columns = append(columns, name)
	}
	if len(columns) == 0 {
		return nil, failure.New(failure.KindParse, "header row %d has no named columns", headerRow+1)
	}

	rows := make([]Row, 0, len(grid)-headerRow-1)
	for _, record := range grid[headerRow+1:] {
		if len(record) == 0 {
			continue
		}
		row := make(Row, len(columns))
		for j, idx := range keep {
			var v *string
			if idx < len(record) {
				v = normalizeCell(record[idx])
			}
			row[columns[j]] = v
		}
		rows = append(rows, row)
	}

	return &Table{Kind: Tabular, Columns: columns, Rows: rows}, nil
}

// pickHeaderRow returns the index of the row to use as header and whether that row is
// still majority-placeholder.
func pickHeaderRow(grid Grid) (int, bool, bool) {
	best, bestCount := -1, 0
	for attempt := 0; attempt <= maxHeaderRetries && attempt < len(grid); attempt++ {
		row := grid[attempt]
		if len(row) == 0 {
			continue
		}
		placeholders := 0
		for _, cell := range row {
			if isPlaceholder(headerName(cell)) {
				placeholders++
			}
		}
		if placeholders*2 <= len(row) {
			return attempt, false, true
		}
		if best < 0 || placeholders < bestCount {
			best, bestCount = attempt, placeholders
		}
	}
	return best, true, best >= 0
}

func headerName(cell any) string {
	s, ok := utils.CellString(cell)
	if !ok {
		return ""
	}
	return strings.TrimSpace(norm.NFC.String(s))
}

func isPlaceholder(name string) bool {
	return name == "" || strings.HasPrefix(name, placeholderPrefix)
}

// uniqueName finds the first free "name.N" starting at n.
func uniqueName(name string, n int, seen map[string]int) string {
	for {
		candidate := name + "." + strconv.Itoa(n)
		if _, taken := seen[candidate]; !taken {
			return candidate
		}
		n++
	}
}

// normalizeCell converts a decoded cell to a trimmed, NFC-normalized value or nil.
func normalizeCell(cell any) *string {
	s, ok := utils.CellString(cell)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(norm.NFC.String(s))
	if s == "" {
		return nil
	}
	return &s
}
