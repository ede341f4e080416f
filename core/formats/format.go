package formats

import (
	"io"

	"datadiff/core/table"
)

// Format is one supported input type.
type Format interface {
	// Name is the lowercase extension without the dot (e.g., "csv").
	Name() string
	// Kind is the shape of table the format produces.
	Kind() table.Kind
}

// GridDecoder is implemented by tabular formats.
type GridDecoder interface {
	Format
	DecodeGrid(r io.Reader) (table.Grid, error)
}

// TreeDecoder is implemented by tree formats.
type TreeDecoder interface {
	Format
	DecodeTree(r io.Reader) (*table.Node, error)
}

// Source is a decoded file.
type Source struct {
	// Format is the name of the format that decoded the file.
	Format string
	// Table is the canonical table.
	Table *table.Table
	// Lines holds the raw document, one entry per line. Only tree formats fill it.
	Lines []string
}
