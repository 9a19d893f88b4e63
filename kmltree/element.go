package kmltree

import "encoding/xml"

// Element is a single node in the tree. Name.Space holds the namespace URI
// (empty for unnamespaced elements) and Name.Local the tag name. Text is the
// element's direct character data, excluding any text inside children.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Text     string
	Children []*Element
}

// New creates a detached element with the given namespace URI and local name.
func New(space, local string) *Element {
	return &Element{Name: xml.Name{Space: space, Local: local}}
}

// Sub creates a new element, appends it as the last child, and returns it.
func (e *Element) Sub(space, local string) *Element {
	child := New(space, local)
	e.Children = append(e.Children, child)
	return child
}

// Append adds an already-built element as the last child.
func (e *Element) Append(child *Element) {
	e.Children = append(e.Children, child)
}

// Find returns the first direct child matching the qualified name exactly,
// or nil if there is none.
func (e *Element) Find(space, local string) *Element {
	for _, c := range e.Children {
		if c.Name.Space == space && c.Name.Local == local {
			return c
		}
	}
	return nil
}

// FindAll returns all direct children matching the qualified name exactly,
// in document order.
func (e *Element) FindAll(space, local string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name.Space == space && c.Name.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns the value of the named unqualified attribute, or "" if unset.
func (e *Element) Attr(local string) string {
	for _, a := range e.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets the named unqualified attribute, replacing any existing value.
func (e *Element) SetAttr(local, value string) {
	for i, a := range e.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: local}, Value: value})
}
