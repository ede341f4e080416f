package diff

// Status is the outcome of comparing one cell.
type Status string

const (
	// StatusMatch means both sides hold the same value (or are both null).
	StatusMatch Status = "match"
	// StatusDifferent means both sides hold different values.
	StatusDifferent Status = "different"
	// StatusSourceOnly means only the source holds a value.
	StatusSourceOnly Status = "source_only"
	// StatusTargetOnly means only the target holds a value.
	StatusTargetOnly Status = "target_only"
)

// CellComparison is the result for one column of one compared row.
type CellComparison struct {
	SourceValue *string `json:"sourceValue"`
	TargetValue *string `json:"targetValue"`
	Status      Status  `json:"status"`
	// IsEmpty is set when the path came from an empty tree element.
	IsEmpty bool `json:"isEmpty,omitempty"`
}

// RowComparison is one row of the report.
type RowComparison struct {
	// HasDifferences is true when any cell is not a match.
	HasDifferences bool `json:"hasDifferences"`

	// Cells maps every report column to its comparison.
	Cells map[string]CellComparison `json:"cells"`

	// SourceIndex is the source row position, nil for target-only rows.
	SourceIndex *int `json:"sourceIndex,omitempty"`

	// TargetIndex is the target row position, nil for source-only rows.
	TargetIndex *int `json:"targetIndex,omitempty"`
}

// Summary provides aggregate counts for a report.
type Summary struct {
	// TotalRows is max(source rows, target rows) for tabular input,
	// or the number of compared paths for tree input.
	TotalRows int `json:"totalRows"`

	// MatchingRows counts paired rows without differences (or matching paths).
	MatchingRows int `json:"matchingRows"`

	// DifferingRows counts paired rows with at least one different cell
	// (or paths whose values differ).
	DifferingRows int `json:"differingRows"`

	// ExtraRowsInSource counts source rows without a partner (or source-only paths).
	ExtraRowsInSource int `json:"extraRowsInSource"`

	// ExtraRowsInTarget counts target rows never paired (or target-only paths).
	ExtraRowsInTarget int `json:"extraRowsInTarget"`
}

// Report is the full outcome of a comparison.
type Report struct {
	// FileType is the format name of the compared inputs (csv, xlsx, xml, table).
	FileType string `json:"fileType"`

	// Columns is the source column order followed by target-only columns.
	Columns []string `json:"columns"`

	// Rows holds one entry per source row in source order, paired or not,
	// followed by the target rows that were never paired.
	Rows []RowComparison `json:"rows"`

	Summary Summary `json:"summary"`

	// OriginalSourceLines carries the raw source document for tree inputs.
	OriginalSourceLines []string `json:"originalSourceLines,omitempty"`
}
