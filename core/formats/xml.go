package formats

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"datadiff/core/failure"
	"datadiff/core/table"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// XML decodes markup documents into an element tree.
type XML struct{}

func (XML) Name() string     { return "xml" }
func (XML) Kind() table.Kind { return table.Tree }

// DecodeTree parses the whole document and returns its root element.
// An element's text is the character data before its first child; tail text is dropped.
// Comments, processing instructions and directives are ignored.
func (XML) DecodeTree(r io.Reader) (*table.Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var (
		root  *table.Node
		stack []*table.Node
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, failure.Wrap(failure.KindParse, err, "failed to parse xml")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &table.Node{Tag: t.Name.Local}
			for _, a := range t.Attr {
				node.Attrs = append(node.Attrs, table.Attr{Name: attrName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, failure.New(failure.KindParse, "failed to parse xml: multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			// Only text before the first child belongs to the element.
			if len(stack) > 0 {
				if top := stack[len(stack)-1]; len(top.Children) == 0 {
					top.Text += string(t)
				}
			}
		}
	}

	if root == nil {
		return nil, failure.New(failure.KindParse, "failed to parse xml: no root element")
	}
	return root, nil
}

// attrName keeps namespace declarations recognizable and drops resolved namespaces.
func attrName(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return n.Local
}

// charsetReader converts documents declaring a non UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
