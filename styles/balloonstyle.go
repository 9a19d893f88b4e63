package styles

import (
	"image/color"

	"github.com/cartokit/kmlstyle/balloon"
	"github.com/cartokit/kmlstyle/kmlcolor"
	"github.com/cartokit/kmlstyle/kmltree"
)

// DisplayMode controls whether the balloon is shown at all.
type DisplayMode string

const (
	DisplayModeDefault DisplayMode = "default"
	DisplayModeHide    DisplayMode = "hide"
)

// BalloonStyle specifies how the description balloon for placemarks is
// drawn. All fields are optional; empty strings are omitted from output.
type BalloonStyle struct {
	BaseObject
	// BgColor is the balloon background in aabbggrr notation. Unset means
	// opaque white. The legacy color tag is accepted as a fallback source
	// on input only.
	BgColor string
	// TextColor is the foreground text color. Unset means opaque black.
	TextColor string
	// Text is the balloon content. It may embed entity placeholders such
	// as $[name] or $[description], resolved against the owning feature.
	// An empty string is treated as unset and emits no text element; a
	// balloon whose text should render empty has no representation here.
	Text        string
	DisplayMode DisplayMode
}

// NewBalloonStyle returns an empty BalloonStyle.
func NewBalloonStyle(ns, id string) *BalloonStyle {
	return &BalloonStyle{BaseObject: BaseObject{NS: ns, ID: id}}
}

func (b *BalloonStyle) Kind() StyleKind { return KindBalloon }
func (b *BalloonStyle) subStyle()       {}

func (b *BalloonStyle) Encode() (*kmltree.Element, error) {
	el := b.element("BalloonStyle")
	if b.BgColor != "" {
		el.Sub(b.NS, "bgColor").Text = b.BgColor
	}
	if b.TextColor != "" {
		el.Sub(b.NS, "textColor").Text = b.TextColor
	}
	if b.Text != "" {
		el.Sub(b.NS, "text").Text = b.Text
	}
	if b.DisplayMode != "" {
		el.Sub(b.NS, "displayMode").Text = string(b.DisplayMode)
	}
	return el, nil
}

func (b *BalloonStyle) Decode(el *kmltree.Element) error {
	b.decodeBase(el)
	if bg := el.Find(b.NS, "bgColor"); bg != nil {
		b.BgColor = bg.Text
	} else if bg := el.Find(b.NS, "color"); bg != nil {
		// The color tag inside BalloonStyle is deprecated in favor of
		// bgColor but still appears in older documents.
		b.BgColor = bg.Text
	}
	if tc := el.Find(b.NS, "textColor"); tc != nil {
		b.TextColor = tc.Text
	}
	if t := el.Find(b.NS, "text"); t != nil {
		b.Text = t.Text
	}
	if dm := el.Find(b.NS, "displayMode"); dm != nil {
		b.DisplayMode = DisplayMode(dm.Text)
	}
	return nil
}

// EffectiveBgColor resolves the background color a viewer would use,
// applying the opaque-white default when the field is unset.
func (b *BalloonStyle) EffectiveBgColor() (color.NRGBA, error) {
	if b.BgColor == "" {
		return kmlcolor.Parse(kmlcolor.OpaqueWhite)
	}
	return kmlcolor.Parse(b.BgColor)
}

// EffectiveTextColor resolves the text color a viewer would use, applying
// the opaque-black default when the field is unset.
func (b *BalloonStyle) EffectiveTextColor() (color.NRGBA, error) {
	if b.TextColor == "" {
		return kmlcolor.Parse(kmlcolor.OpaqueBlack)
	}
	return kmlcolor.Parse(b.TextColor)
}

// Render expands the balloon text's entity placeholders against the given
// feature values.
func (b *BalloonStyle) Render(entities map[string]string) string {
	return balloon.Expand(b.Text, entities)
}
