package table

import "strings"

// Kind is the closed set of table shapes the comparison engine understands.
type Kind int

const (
	// Tabular tables have one row per record and named columns.
	Tabular Kind = iota
	// Tree tables hold a whole document flattened into a single row of path columns.
	Tree
)

func (k Kind) String() string {
	switch k {
	case Tabular:
		return "tabular"
	case Tree:
		return "tree"
	default:
		return "unknown"
	}
}

// Row maps a column name to its value. A nil value is null.
type Row map[string]*string

// Get returns the value of col, or nil when the column is absent or null.
func (r Row) Get(col string) *string {
	if r == nil {
		return nil
	}
	return r[col]
}

// Table is the canonical representation of a parsed file.
type Table struct {
	// Kind records which producer built the table.
	Kind Kind `json:"-"`
	// Columns lists every column once, in first-seen order.
	Columns []string `json:"columns"`
	// Rows holds the records. Keys are always a subset of Columns.
	Rows []Row `json:"rows"`
	// Empty holds the paths of empty tree elements (<b/>). Only Flatten fills it.
	Empty map[string]bool `json:"-"`
}

// IsEmpty reports whether col was produced by an empty tree element.
func (t *Table) IsEmpty(col string) bool {
	return t.Empty[col]
}

// Head returns a copy of the table limited to its first n rows.
func (t *Table) Head(n int) *Table {
	rows := t.Rows
	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	return &Table{Kind: t.Kind, Columns: t.Columns, Rows: rows, Empty: t.Empty}
}

// emptyMarkerSuffix is appended to a path to name its isEmpty marker on the wire.
const emptyMarkerSuffix = "_isEmpty"

// EmptyMarker returns the marker column name that flags path as an empty element.
func EmptyMarker(path string) string {
	return path + emptyMarkerSuffix
}

// Value returns a pointer to s, for building rows by hand.
func Value(s string) *string {
	return &s
}

// Normalized trims v and collapses the empty string to null.
func Normalized(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	if s == *v {
		return v
	}
	return &s
}
