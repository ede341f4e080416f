package diff

import "datadiff/core/table"

// CompareCell classifies one cell after trimming both sides and treating "" as null.
// Both null is a match; a null side makes the other side's status; otherwise the
// values either match or differ.
func CompareCell(src, tgt *string) CellComparison {
	s, t := table.Normalized(src), table.Normalized(tgt)
	c := CellComparison{SourceValue: s, TargetValue: t}
	switch {
	case s == nil && t == nil:
		c.Status = StatusMatch
	case s == nil:
		c.Status = StatusTargetOnly
	case t == nil:
		c.Status = StatusSourceOnly
	case *s == *t:
		c.Status = StatusMatch
	default:
		c.Status = StatusDifferent
	}
	return c
}

// compareMatchedCell is the two-state comparator used for paired tabular rows, where
// missing values are already accounted for at row level.
func compareMatchedCell(src, tgt *string) CellComparison {
	s, t := table.Normalized(src), table.Normalized(tgt)
	c := CellComparison{SourceValue: s, TargetValue: t, Status: StatusDifferent}
	if (s == nil && t == nil) || (s != nil && t != nil && *s == *t) {
		c.Status = StatusMatch
	}
	return c
}
