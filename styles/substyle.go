package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cartokit/kmlstyle/kmltree"
)

// StyleKind identifies the concrete kind of a sub-style.
type StyleKind int

const (
	KindIcon StyleKind = iota
	KindLine
	KindPoly
	KindLabel
	KindBalloon
)

func (k StyleKind) String() string {
	switch k {
	case KindIcon:
		return "IconStyle"
	case KindLine:
		return "LineStyle"
	case KindPoly:
		return "PolyStyle"
	case KindLabel:
		return "LabelStyle"
	case KindBalloon:
		return "BalloonStyle"
	default:
		return "Unknown"
	}
}

// SubStyle is the closed set of elements a Style bundle can hold: the four
// color styles plus BalloonStyle. The unexported method keeps the set closed
// to this package.
type SubStyle interface {
	Kind() StyleKind
	Encode() (*kmltree.Element, error)
	Decode(el *kmltree.Element) error
	subStyle()
}

// StyleSelector is either an inline *Style bundle or a *StyleMap.
type StyleSelector interface {
	Encode() (*kmltree.Element, error)
	Decode(el *kmltree.Element) error
	EnsureID() string
	styleSelector()
}

// PairValue is what a StyleMap slot points at: an inline *Style or a
// *StyleURL reference.
type PairValue interface {
	Encode() (*kmltree.Element, error)
	pairValue()
}

// Share ensures sel carries an id and returns a StyleURL referencing it by
// fragment, for use wherever the selector is defined in the same document.
func Share(sel StyleSelector) *StyleURL {
	var ns string
	switch v := sel.(type) {
	case *Style:
		ns = v.NS
	case *StyleMap:
		ns = v.NS
	}
	return NewStyleURL(ns, "#"+sel.EnsureID())
}

func parseFloat(text, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("styles: parsing %s: %w", field, err)
	}
	return v, nil
}

// parseIntBool reads a 0/1 flag, tolerating float-formatted text such as
// "1.0" by truncating toward zero.
func parseIntBool(text, field string) (int, error) {
	v, err := parseFloat(text, field)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
