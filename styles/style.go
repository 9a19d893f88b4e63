package styles

import (
	"fmt"

	"github.com/cartokit/kmlstyle/kmltree"
)

// Style defines an addressable style group that StyleMaps and features can
// reference. A bundle holds zero or more sub-styles in insertion order; at
// most one of each kind is meaningful to a viewer.
type Style struct {
	BaseObject
	subStyles []SubStyle
}

// NewStyle returns an empty style bundle.
func NewStyle(ns, id string) *Style {
	return &Style{BaseObject: BaseObject{NS: ns, ID: id}}
}

func (s *Style) styleSelector() {}
func (s *Style) pairValue()     {}

// validSubStyle reports whether sub is a usable member: one of the five
// concrete kinds, and not a typed-nil pointer smuggled in behind the
// interface.
func validSubStyle(sub SubStyle) bool {
	switch v := sub.(type) {
	case *IconStyle:
		return v != nil
	case *LineStyle:
		return v != nil
	case *PolyStyle:
		return v != nil
	case *LabelStyle:
		return v != nil
	case *BalloonStyle:
		return v != nil
	default:
		return false
	}
}

// Append adds a sub-style to the bundle. Only non-nil values of the five
// concrete sub-style kinds are admitted; anything else fails with
// ErrNotSubStyle.
func (s *Style) Append(sub SubStyle) error {
	if !validSubStyle(sub) {
		return fmt.Errorf("%w: %T", ErrNotSubStyle, sub)
	}
	s.subStyles = append(s.subStyles, sub)
	return nil
}

// Styles returns the members in insertion order. Each member is re-validated
// on every call, so a bundle corrupted past Append fails with ErrNotSubStyle
// instead of propagating an invalid member.
func (s *Style) Styles() ([]SubStyle, error) {
	out := make([]SubStyle, 0, len(s.subStyles))
	for _, sub := range s.subStyles {
		if !validSubStyle(sub) {
			return nil, fmt.Errorf("%w: %T", ErrNotSubStyle, sub)
		}
		out = append(out, sub)
	}
	return out, nil
}

// subStyleTags maps tag names to constructors, in the canonical order Decode
// probes them. Input child order is not preserved; re-encoding a decoded
// bundle always yields this order.
var subStyleTags = []struct {
	local string
	make  func(ns string) SubStyle
}{
	{"IconStyle", func(ns string) SubStyle { return NewIconStyle(ns, "") }},
	{"LineStyle", func(ns string) SubStyle { return NewLineStyle(ns, "") }},
	{"PolyStyle", func(ns string) SubStyle { return NewPolyStyle(ns, "") }},
	{"LabelStyle", func(ns string) SubStyle { return NewLabelStyle(ns, "") }},
	{"BalloonStyle", func(ns string) SubStyle { return NewBalloonStyle(ns, "") }},
}

func (s *Style) Decode(el *kmltree.Element) error {
	s.decodeBase(el)
	for _, tag := range subStyleTags {
		child := el.Find(s.NS, tag.local)
		if child == nil {
			continue
		}
		sub := tag.make(s.NS)
		if err := sub.Decode(child); err != nil {
			return err
		}
		if err := s.Append(sub); err != nil {
			return err
		}
	}
	return nil
}

func (s *Style) Encode() (*kmltree.Element, error) {
	subs, err := s.Styles()
	if err != nil {
		return nil, err
	}
	el := s.element("Style")
	for _, sub := range subs {
		child, err := sub.Encode()
		if err != nil {
			return nil, err
		}
		el.Append(child)
	}
	return el, nil
}
