package diff

import (
	"datadiff/core/failure"
	"datadiff/core/table"
)

// Compare builds the difference report of two tables of the same kind.
//
// Tabular tables are aligned row by row; paired rows are compared cell by cell and
// unpaired rows are reported whole. Tree tables are compared path by path in a single
// row. fileType is copied into the report.
func Compare(source, target *table.Table, fileType string, opts Options) (*Report, error) {
	if err := validate("source", source); err != nil {
		return nil, err
	}
	if err := validate("target", target); err != nil {
		return nil, err
	}
	if source.Kind != target.Kind {
		return nil, failure.New(failure.KindStructureIncompatible,
			"cannot compare %s source with %s target", source.Kind, target.Kind)
	}

	columns := unionColumns(source.Columns, target.Columns)
	report := &Report{
		FileType: fileType,
		Columns:  columns,
		Rows:     []RowComparison{},
	}

	if source.Kind == table.Tree {
		compareTree(report, source, target)
	} else {
		compareTabular(report, source, target, opts)
	}

	return report, nil
}

func validate(side string, t *table.Table) error {
	if t == nil {
		return failure.New(failure.KindStructureIncompatible, "%s table is missing", side)
	}
	if t.Columns == nil && len(t.Rows) > 0 {
		return failure.New(failure.KindStructureIncompatible, "%s table has rows but no columns", side)
	}
	known := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		known[c] = struct{}{}
	}
	for i, row := range t.Rows {
		for col := range row {
			if _, ok := known[col]; !ok {
				return failure.New(failure.KindStructureIncompatible,
					"%s row %d has unknown column %q", side, i, col)
			}
		}
	}
	return nil
}

// unionColumns returns source columns followed by target-only columns.
func unionColumns(source, target []string) []string {
	seen := make(map[string]struct{}, len(source)+len(target))
	out := make([]string, 0, len(source)+len(target))
	for _, cols := range [][]string{source, target} {
		for _, c := range cols {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

func compareTabular(report *Report, source, target *table.Table, opts Options) {
	assignment := NewAligner(opts).Align(source.Rows, target.Rows)
	summary := &report.Summary
	summary.TotalRows = max(len(source.Rows), len(target.Rows))

	for si, srcRow := range source.Rows {
		sourceIndex := si
		ti, paired := assignment.Target(si)
		if !paired {
			summary.ExtraRowsInSource++
			report.Rows = append(report.Rows, wholeRow(report.Columns, srcRow, StatusSourceOnly, &sourceIndex, nil))
			continue
		}

		targetIndex := ti
		tgtRow := target.Rows[ti]
		rc := RowComparison{
			Cells:       make(map[string]CellComparison, len(report.Columns)),
			SourceIndex: &sourceIndex,
			TargetIndex: &targetIndex,
		}
		for _, col := range report.Columns {
			cell := compareMatchedCell(srcRow.Get(col), tgtRow.Get(col))
			if cell.Status != StatusMatch {
				rc.HasDifferences = true
			}
			rc.Cells[col] = cell
		}
		if rc.HasDifferences {
			summary.DifferingRows++
		} else {
			summary.MatchingRows++
		}
		report.Rows = append(report.Rows, rc)
	}

	for ti, tgtRow := range target.Rows {
		if assignment.Consumed(ti) {
			continue
		}
		targetIndex := ti
		summary.ExtraRowsInTarget++
		report.Rows = append(report.Rows, wholeRow(report.Columns, tgtRow, StatusTargetOnly, nil, &targetIndex))
	}
}

// wholeRow reports a row that has no partner.
func wholeRow(columns []string, row table.Row, status Status, sourceIndex, targetIndex *int) RowComparison {
	rc := RowComparison{
		HasDifferences: true,
		Cells:          make(map[string]CellComparison, len(columns)),
		SourceIndex:    sourceIndex,
		TargetIndex:    targetIndex,
	}
	for _, col := range columns {
		v := table.Normalized(row.Get(col))
		cell := CellComparison{Status: status}
		if status == StatusSourceOnly {
			cell.SourceValue = v
		} else {
			cell.TargetValue = v
		}
		rc.Cells[col] = cell
	}
	return rc
}

func compareTree(report *Report, source, target *table.Table) {
	srcRow, tgtRow := firstRow(source), firstRow(target)
	rc := RowComparison{Cells: make(map[string]CellComparison, len(report.Columns))}
	summary := &report.Summary

	for _, col := range report.Columns {
		cell := CompareCell(srcRow.Get(col), tgtRow.Get(col))
		_, inSource := srcRow[col]
		if inSource {
			cell.IsEmpty = source.IsEmpty(col)
		} else {
			cell.IsEmpty = target.IsEmpty(col)
		}
		rc.Cells[col] = cell

		summary.TotalRows++
		switch cell.Status {
		case StatusMatch:
			summary.MatchingRows++
		case StatusDifferent:
			summary.DifferingRows++
			rc.HasDifferences = true
		case StatusSourceOnly:
			summary.ExtraRowsInSource++
			rc.HasDifferences = true
		case StatusTargetOnly:
			summary.ExtraRowsInTarget++
			rc.HasDifferences = true
		}
	}

	report.Rows = append(report.Rows, rc)
}

func firstRow(t *table.Table) table.Row {
	if len(t.Rows) == 0 {
		return table.Row{}
	}
	return t.Rows[0]
}
