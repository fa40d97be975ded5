// Package ccf extracts the option decode table from decrypted CCF XML.
//
// The CCF dialect nests option groups anywhere in the document:
//
//	<group start="5" name="GROUP_CCF_EUCD_DOORS">
//	  <title><tm id="@ccf_doors">Doors</tm></title>
//	  <parameter>
//	    <option value="0x01" name="FOUR_DOOR"><tm>4 door</tm></option>
//	  </parameter>
//	</group>
package ccf

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"sdd-exml/internal/archive"
)

// ErrNoRoot is returned when the input contains no XML element.
var ErrNoRoot = errors.New("ccf: document has no root element")

// Node is one XML element. Text holds the character data before the first
// child element, which is where CCF keeps labels.
type Node struct {
	Name     string
	Attrs    []xml.Attr
	Text     string
	Children []*Node
}

// Document is a parsed CCF file.
type Document struct {
	Root *Node
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first in document order,
// calling fn for every element named name.
func (n *Node) Walk(name string, fn func(*Node)) {
	if n.Name == name {
		fn(n)
	}
	for _, c := range n.Children {
		c.Walk(name, fn)
	}
}

// Descendants returns every element named name below n (n excluded), in document order.
func (n *Node) Descendants(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		c.Walk(name, func(m *Node) { out = append(out, m) })
	}
	return out
}

// Parse builds a Document from r. Declared non-UTF-8 encodings are decoded.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ccf: parse: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local, Attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("ccf: parse: multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			if len(top.Children) == 0 {
				top.Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}
	return &Document{Root: root}, nil
}

// LooksLikeXML reports whether data starts, after an optional UTF-8 BOM and
// whitespace, with '<'. Decrypted CCF files do; EXML containers almost never do.
func LooksLikeXML(data []byte) bool {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) > 0 && data[0] == '<'
}

// ParseBytes parses an in-memory document.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// ParseFile reads and parses the CCF file at path. xz-compressed files are accepted.
func ParseFile(path string) (*Document, error) {
	data, err := archive.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return doc, nil
}
