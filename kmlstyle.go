// Package kmlstyle converts KML style selectors between their in-memory
// model and XML.
//
// Basic usage:
//
//	sel, err := kmlstyle.ParseBytes(data)
//	if err != nil {
//	    // handle error
//	}
//	switch sel := sel.(type) {
//	case *styles.Style:
//	    // inline bundle
//	case *styles.StyleMap:
//	    // normal/highlight map
//	}
//
// Serializing back:
//
//	data, err := kmlstyle.Marshal(sel)
//
// For finer control the styles and kmltree packages are also available.
package kmlstyle

import (
	"fmt"
	"io"

	"github.com/cartokit/kmlstyle/kmltree"
	"github.com/cartokit/kmlstyle/styles"
)

// DefaultNS is the OGC KML 2.2 namespace URI.
const DefaultNS = "http://www.opengis.net/kml/2.2"

// selectorTags maps root tag names to constructors for the two style
// selector shapes.
var selectorTags = map[string]func() styles.StyleSelector{
	"Style":    func() styles.StyleSelector { return styles.NewStyle("", "") },
	"StyleMap": func() styles.StyleSelector { return styles.NewStyleMap("", "") },
}

// Parse reads a single Style or StyleMap document from r. Which concrete
// selector comes back is decided by the root tag name.
func Parse(r io.Reader) (styles.StyleSelector, error) {
	root, err := kmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromElement(root)
}

// ParseBytes parses a single Style or StyleMap document held in memory.
func ParseBytes(b []byte) (styles.StyleSelector, error) {
	root, err := kmltree.ParseBytes(b)
	if err != nil {
		return nil, err
	}
	return FromElement(root)
}

// FromElement decodes an already-built element into the style selector its
// tag names.
func FromElement(root *kmltree.Element) (styles.StyleSelector, error) {
	build, ok := selectorTags[root.Name.Local]
	if !ok {
		return nil, fmt.Errorf("kmlstyle: %q is not a style selector element", root.Name.Local)
	}
	sel := build()
	if err := sel.Decode(root); err != nil {
		return nil, err
	}
	return sel, nil
}

// Write serializes sel as XML to w.
func Write(w io.Writer, sel styles.StyleSelector) error {
	el, err := sel.Encode()
	if err != nil {
		return err
	}
	return kmltree.Encode(w, el)
}

// Marshal serializes sel as XML bytes.
func Marshal(sel styles.StyleSelector) ([]byte, error) {
	el, err := sel.Encode()
	if err != nil {
		return nil, err
	}
	return kmltree.EncodeBytes(el)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	sel := kmlstyle.Must(kmlstyle.ParseBytes(data))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
