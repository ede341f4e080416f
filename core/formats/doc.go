// Package formats decodes uploaded files into canonical tables.
//
// Each supported format (csv, xlsx, xml) declares the table.Kind it produces and
// implements exactly one decoding capability:
//   - GridDecoder for tabular formats, whose output goes through table.Normalize.
//   - TreeDecoder for tree formats, whose output goes through table.Flatten.
//
// The Registry resolves a format from a file extension once, at the boundary, so the
// rest of the code never branches on file type strings.
//
// Decoding errors are reported as failure.KindParse; unknown extensions as
// failure.KindUnsupportedFileType.
package formats
