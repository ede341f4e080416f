package formats

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"datadiff/core/failure"
	"datadiff/core/table"
)

// Registry maps file extensions to formats.
type Registry struct {
	formats map[string]Format
}

// NewRegistry returns a registry holding csv, xlsx and xml.
func NewRegistry() *Registry {
	r := &Registry{formats: make(map[string]Format)}
	r.Register(CSV{})
	r.Register(XLSX{})
	r.Register(XML{})
	return r
}

// Register adds or replaces a format.
func (r *Registry) Register(f Format) {
	r.formats[strings.ToLower(f.Name())] = f
}

// Extensions returns the registered extensions, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.formats))
	for name := range r.formats {
		exts = append(exts, name)
	}
	sort.Strings(exts)
	return exts
}

// Lookup resolves the format of filename from its extension.
func (r *Registry) Lookup(filename string) (Format, error) {
	ext := Extension(filename)
	f, ok := r.formats[ext]
	if !ok {
		return nil, failure.New(failure.KindUnsupportedFileType,
			"file type %q is not supported, allowed types: %s", ext, strings.Join(r.Extensions(), ", "))
	}
	return f, nil
}

// Allowed reports whether filename has a registered extension.
func (r *Registry) Allowed(filename string) bool {
	_, ok := r.formats[Extension(filename)]
	return ok
}

// Load decodes content named filename into a canonical table.
func (r *Registry) Load(filename string, content io.Reader) (*Source, error) {
	f, err := r.Lookup(filename)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	switch dec := f.(type) {
	case GridDecoder:
		grid, err := dec.DecodeGrid(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		tbl, err := table.Normalize(grid)
		if err != nil {
			return nil, err
		}
		return &Source{Format: f.Name(), Table: tbl}, nil
	case TreeDecoder:
		root, err := dec.DecodeTree(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return &Source{Format: f.Name(), Table: table.Flatten(root), Lines: SplitLines(data)}, nil
	default:
		return nil, fmt.Errorf("format %s has no decoder", f.Name())
	}
}

// LoadFile opens path and decodes it.
func (r *Registry) LoadFile(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return r.Load(filepath.Base(path), file)
}

// Extension returns the lowercase extension of filename without the dot.
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// SplitLines splits a document into lines, accepting \n and \r\n endings.
// A trailing newline does not produce an empty last line.
func SplitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}
