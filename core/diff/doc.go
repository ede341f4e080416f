// Package diff compares two canonical tables and produces a cell-level report.
//
// # Pipeline
//
// A comparison runs in four steps, each usable on its own:
//
//  1. Similarity scoring: StringSimilarity scores two values in [0,1], RowSimilarity
//     averages it over the columns two rows share, and FingerprintSimilarity gives a
//     cheap estimate used to prune candidates.
//  2. Row alignment: Aligner.Align pairs source rows with target rows greedily, in
//     source order, first come first served. The result is an Assignment, an
//     injective partial map from source index to target index.
//  3. Cell comparison: CompareCell classifies one column of a row pair as match,
//     different, source_only or target_only.
//  4. Report assembly: Compare runs the steps above and aggregates a Report with a
//     summary.
//
// Tabular tables go through alignment. Tree tables hold one row per document and are
// compared path by path.
//
// # Thresholds
//
// The prefilter threshold (0.2), the match threshold (0.30) and the candidate cap (50)
// are empirical and live in Options, which the application loads from the "compare"
// configuration section.
//
// # Usage
//
//	report, err := diff.Compare(src, tgt, "csv", diff.DefaultOptions())
package diff
