// Package table holds the canonical row/column model shared by every input format,
// together with the two producers of that model.
//
// # Canonical Table
//
// A Table is an ordered list of unique column names plus a list of rows. A Row maps
// column names to trimmed string values; a nil value (or an absent key) is null.
// Numbers, dates and booleans are stringified before they reach a Row so that
// comparison is never type-ambiguous.
//
// # Producers
//
//   - Normalize: turns a decoded grid (spreadsheet, CSV, SQL result) into a Tabular table.
//     It recovers from accidental multi-row headers and strips placeholder columns.
//   - Flatten: turns an element tree into a Tree table holding one row whose columns are
//     indexed element paths, in document order.
//
// # Usage
//
//	tbl, err := table.Normalize(grid)
//	doc := table.Flatten(root)
package table
