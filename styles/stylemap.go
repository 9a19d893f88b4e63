package styles

import (
	"fmt"

	"github.com/cartokit/kmlstyle/kmltree"
)

// StyleMap maps between two styles, typically to give a placemark separate
// normal and highlighted looks. Each slot holds an inline *Style or a
// *StyleURL; a nil slot is simply absent.
type StyleMap struct {
	BaseObject
	Normal    PairValue
	Highlight PairValue
}

// NewStyleMap returns a StyleMap with both slots empty.
func NewStyleMap(ns, id string) *StyleMap {
	return &StyleMap{BaseObject: BaseObject{NS: ns, ID: id}}
}

func (m *StyleMap) styleSelector() {}

// Decode reads every Pair child. Unrecognized keys fail with ErrPairKey and
// a pair holding neither a Style nor a styleUrl fails with ErrPairEmpty.
// Duplicate keys are not rejected; the last pair wins.
func (m *StyleMap) Decode(el *kmltree.Element) error {
	m.decodeBase(el)
	for _, pair := range el.FindAll(m.NS, "Pair") {
		key := pair.Find(m.NS, "key")
		if key == nil {
			return fmt.Errorf("%w: key element missing", ErrPairKey)
		}
		switch key.Text {
		case "normal", "highlight":
		default:
			return fmt.Errorf("%w: got %q", ErrPairKey, key.Text)
		}
		val, err := m.decodePairValue(pair)
		if err != nil {
			return err
		}
		if key.Text == "normal" {
			m.Normal = val
		} else {
			m.Highlight = val
		}
	}
	return nil
}

func (m *StyleMap) decodePairValue(pair *kmltree.Element) (PairValue, error) {
	if styleEl := pair.Find(m.NS, "Style"); styleEl != nil {
		style := NewStyle(m.NS, "")
		if err := style.Decode(styleEl); err != nil {
			return nil, err
		}
		return style, nil
	}
	if urlEl := pair.Find(m.NS, "styleUrl"); urlEl != nil {
		url := NewStyleURL(m.NS, "")
		if err := url.Decode(urlEl); err != nil {
			return nil, err
		}
		return url, nil
	}
	return nil, ErrPairEmpty
}

// emptySlot reports whether a slot holds nothing to encode: a nil interface
// or a typed-nil *Style/*StyleURL pointer.
func emptySlot(val PairValue) bool {
	switch v := val.(type) {
	case *Style:
		return v == nil
	case *StyleURL:
		return v == nil
	default:
		return val == nil
	}
}

// Encode emits one Pair per populated slot, normal first. Empty slots are
// skipped; the pair content is appended directly, not wrapped.
func (m *StyleMap) Encode() (*kmltree.Element, error) {
	el := m.element("StyleMap")
	slots := []struct {
		key string
		val PairValue
	}{
		{"normal", m.Normal},
		{"highlight", m.Highlight},
	}
	for _, slot := range slots {
		if emptySlot(slot.val) {
			continue
		}
		child, err := slot.val.Encode()
		if err != nil {
			return nil, err
		}
		pair := el.Sub(m.NS, "Pair")
		pair.Sub(m.NS, "key").Text = slot.key
		pair.Append(child)
	}
	return el, nil
}
