package kmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrNoElement is returned when the input contains no element at all.
var ErrNoElement = errors.New("kmltree: no root element in input")

// Parse reads an XML document and returns its root element. The declared
// document charset is honored; anything the HTML encoding index knows
// (ISO-8859-1, windows-1252, etc.) is converted to UTF-8 transparently.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kmltree: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name}
			for _, a := range t.Attr {
				// Namespace declarations are resolved into Name.Space;
				// drop them so they don't survive as ordinary attributes.
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.Attrs = append(el.Attrs, a)
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				cur := stack[len(stack)-1]
				cur.Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, ErrNoElement
	}
	return root, nil
}

// ParseBytes parses an XML document held in memory.
func ParseBytes(b []byte) (*Element, error) {
	return Parse(bytes.NewReader(b))
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("kmltree: unsupported charset %q: %w", charset, err)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// Encode writes the tree rooted at el as an XML fragment. A default-namespace
// declaration is emitted on any element whose namespace differs from its
// parent's, so a uniformly namespaced tree declares xmlns once, on the root.
func Encode(w io.Writer, el *Element) error {
	enc := xml.NewEncoder(w)
	if err := encodeElement(enc, el, ""); err != nil {
		return fmt.Errorf("kmltree: %w", err)
	}
	return enc.Flush()
}

// EncodeBytes renders the tree rooted at el to a byte slice.
func EncodeBytes(el *Element) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, el); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeElement(enc *xml.Encoder, el *Element, inherited string) error {
	start := xml.StartElement{Name: xml.Name{Local: el.Name.Local}}
	if el.Name.Space != inherited {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: "xmlns"},
			Value: el.Name.Space,
		})
	}
	start.Attr = append(start.Attr, el.Attrs...)

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if el.Text != "" {
		if err := enc.EncodeToken(xml.CharData(el.Text)); err != nil {
			return err
		}
	}
	for _, child := range el.Children {
		if err := encodeElement(enc, child, el.Name.Space); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: start.Name})
}
