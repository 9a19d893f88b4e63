package styles

import (
	"errors"
	"testing"

	"github.com/cartokit/kmlstyle/kmltree"
)

func pairWithKey(el *kmltree.Element, ns, key string) *kmltree.Element {
	pair := el.Sub(ns, "Pair")
	pair.Sub(ns, "key").Text = key
	return pair
}

// ============================================================================
// Decode Tests
// ============================================================================

func TestStyleMapDecodeStyleURL(t *testing.T) {
	input := `<StyleMap xmlns="http://www.opengis.net/kml/2.2"><Pair><key>normal</key><styleUrl>#s1</styleUrl></Pair></StyleMap>`

	root, err := kmltree.ParseBytes([]byte(input))
	if err != nil {
		t.Fatalf("ParseBytes() error: %v", err)
	}

	m := NewStyleMap("", "")
	if err := m.Decode(root); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	ref, ok := m.Normal.(*StyleURL)
	if !ok {
		t.Fatalf("Normal is %T, want *StyleURL", m.Normal)
	}
	if ref.URL != "#s1" {
		t.Errorf("URL = %q, want %q", ref.URL, "#s1")
	}
	if m.Highlight != nil {
		t.Errorf("Highlight = %v, want nil", m.Highlight)
	}

	out, err := m.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	pairs := out.FindAll(testNS, "Pair")
	if len(pairs) != 1 {
		t.Fatalf("Encode() produced %d pairs, want 1", len(pairs))
	}
	if key := pairs[0].Find(testNS, "key"); key == nil || key.Text != "normal" {
		t.Errorf("pair key = %v, want normal", key)
	}
}

func TestStyleMapDecodeInlineStyle(t *testing.T) {
	el := kmltree.New(testNS, "StyleMap")
	pair := pairWithKey(el, testNS, "highlight")
	style := pair.Sub(testNS, "Style")
	style.Sub(testNS, "LineStyle").Sub(testNS, "width").Text = "4"

	m := NewStyleMap(testNS, "")
	if err := m.Decode(el); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	inline, ok := m.Highlight.(*Style)
	if !ok {
		t.Fatalf("Highlight is %T, want *Style", m.Highlight)
	}
	subs, err := inline.Styles()
	if err != nil {
		t.Fatalf("Styles() error: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("inline style has %d members, want 1", len(subs))
	}
	if w := subs[0].(*LineStyle).Width; w != 4 {
		t.Errorf("Width = %v, want 4", w)
	}
}

func TestStyleMapKeyEnforcement(t *testing.T) {
	tests := []struct {
		name  string
		build func(el *kmltree.Element)
		want  error
	}{
		{
			"unrecognized key",
			func(el *kmltree.Element) {
				pair := pairWithKey(el, testNS, "sideways")
				pair.Sub(testNS, "styleUrl").Text = "#s1"
			},
			ErrPairKey,
		},
		{
			"missing key",
			func(el *kmltree.Element) {
				pair := el.Sub(testNS, "Pair")
				pair.Sub(testNS, "styleUrl").Text = "#s1"
			},
			ErrPairKey,
		},
		{
			"empty pair",
			func(el *kmltree.Element) {
				pairWithKey(el, testNS, "normal")
			},
			ErrPairEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := kmltree.New(testNS, "StyleMap")
			tt.build(el)

			m := NewStyleMap(testNS, "")
			if err := m.Decode(el); !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStyleMapDuplicateKeyLastWins(t *testing.T) {
	el := kmltree.New(testNS, "StyleMap")
	pairWithKey(el, testNS, "normal").Sub(testNS, "styleUrl").Text = "#first"
	pairWithKey(el, testNS, "normal").Sub(testNS, "styleUrl").Text = "#second"

	m := NewStyleMap(testNS, "")
	if err := m.Decode(el); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	ref, ok := m.Normal.(*StyleURL)
	if !ok {
		t.Fatalf("Normal is %T, want *StyleURL", m.Normal)
	}
	if ref.URL != "#second" {
		t.Errorf("URL = %q, want the last pair's %q", ref.URL, "#second")
	}
}

// ============================================================================
// Encode Tests
// ============================================================================

func TestStyleMapEncodeOrder(t *testing.T) {
	m := NewStyleMap(testNS, "m1")
	m.Highlight = NewStyleURL(testNS, "#hot")
	m.Normal = NewStyleURL(testNS, "#cold")

	el, err := m.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if el.Attr("id") != "m1" {
		t.Errorf("id = %q, want m1", el.Attr("id"))
	}

	pairs := el.FindAll(testNS, "Pair")
	if len(pairs) != 2 {
		t.Fatalf("Encode() produced %d pairs, want 2", len(pairs))
	}
	// Fixed order: normal first, highlight second.
	wantKeys := []string{"normal", "highlight"}
	wantURLs := []string{"#cold", "#hot"}
	for i, pair := range pairs {
		if key := pair.Find(testNS, "key"); key == nil || key.Text != wantKeys[i] {
			t.Errorf("pair %d key = %v, want %q", i, key, wantKeys[i])
		}
		if u := pair.Find(testNS, "styleUrl"); u == nil || u.Text != wantURLs[i] {
			t.Errorf("pair %d styleUrl = %v, want %q", i, u, wantURLs[i])
		}
	}
}

func TestStyleMapEncodeSkipsEmptySlots(t *testing.T) {
	tests := []struct {
		name      string
		normal    PairValue
		highlight PairValue
	}{
		{"nil slots", nil, nil},
		{"typed-nil style", (*Style)(nil), nil},
		{"typed-nil styleUrl", nil, (*StyleURL)(nil)},
		{"both typed-nil", (*Style)(nil), (*StyleURL)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStyleMap(testNS, "")
			m.Normal = tt.normal
			m.Highlight = tt.highlight

			el, err := m.Encode()
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if pairs := el.FindAll(testNS, "Pair"); len(pairs) != 0 {
				t.Errorf("Encode() produced %d pairs for an empty map, want 0", len(pairs))
			}
		})
	}
}

func TestStyleMapEncodePropagatesSlotErrors(t *testing.T) {
	m := NewStyleMap(testNS, "")
	m.Normal = NewStyleURL(testNS, "") // no target

	_, err := m.Encode()
	if !errors.Is(err, ErrNoURL) {
		t.Errorf("Encode() error = %v, want ErrNoURL", err)
	}
}

func TestStyleMapRoundTrip(t *testing.T) {
	orig := NewStyleMap(testNS, "m2")
	inline := NewStyle(testNS, "")
	line := NewLineStyle(testNS, "")
	line.Width = 2
	if err := inline.Append(line); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	orig.Normal = inline
	orig.Highlight = NewStyleURL(testNS, "#hot")

	el, err := orig.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	got := NewStyleMap(testNS, "")
	if err := got.Decode(el); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if _, ok := got.Normal.(*Style); !ok {
		t.Errorf("Normal is %T, want *Style", got.Normal)
	}
	ref, ok := got.Highlight.(*StyleURL)
	if !ok {
		t.Fatalf("Highlight is %T, want *StyleURL", got.Highlight)
	}
	if ref.URL != "#hot" {
		t.Errorf("Highlight URL = %q, want %q", ref.URL, "#hot")
	}
}
