package table

import (
	"strconv"
	"strings"
)

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a decoded tree document.
type Node struct {
	Tag string
	// Attrs keeps declaration order.
	Attrs []Attr
	// Text is the element's own character data, untrimmed.
	Text     string
	Children []*Node
}

// rootTextColumn names the column holding text placed directly inside the root element.
const rootTextColumn = "."

// flattenState accumulates the output of one Flatten call.
type flattenState struct {
	columns []string
	row     Row
	empty   map[string]bool
	counts  map[string]int
}

func (s *flattenState) emit(col, value string) {
	if _, exists := s.row[col]; !exists {
		s.columns = append(s.columns, col)
	}
	v := value
	s.row[col] = &v
}

// Flatten turns a tree into a Tree table with exactly one row.
//
// The root element is not part of the paths. Every other element gets an indexed path
// such as "order[2]/item[1]", where the index counts occurrences of the same path under
// the same parent. Attributes become "path/@name" columns (before the element's text),
// non-blank text becomes the "path" column, and an element with no attributes, text or
// children becomes "path" = "" flagged in Table.Empty. Columns keep emission order.
func Flatten(root *Node) *Table {
	s := &flattenState{
		columns: []string{},
		row:     make(Row),
		empty:   make(map[string]bool),
		counts:  make(map[string]int),
	}

	if root != nil {
		for _, a := range root.Attrs {
			s.emit("@"+a.Name, a.Value)
		}
		if text := strings.TrimSpace(root.Text); text != "" {
			s.emit(rootTextColumn, text)
		}
		for _, child := range root.Children {
			flattenNode(s, child, "")
		}
	}

	return &Table{
		Kind:    Tree,
		Columns: s.columns,
		Rows:    []Row{s.row},
		Empty:   s.empty,
	}
}

func flattenNode(s *flattenState, n *Node, parent string) {
	basePath := n.Tag
	if parent != "" {
		basePath = parent + "/" + n.Tag
	}
	s.counts[basePath]++
	path := basePath + "[" + strconv.Itoa(s.counts[basePath]) + "]"

	for _, a := range n.Attrs {
		s.emit(path+"/@"+a.Name, a.Value)
	}

	text := strings.TrimSpace(n.Text)
	if text != "" {
		s.emit(path, text)
	} else if len(n.Attrs) == 0 && len(n.Children) == 0 {
		s.emit(path, "")
		s.empty[path] = true
	}

	for _, child := range n.Children {
		flattenNode(s, child, path)
	}
}
