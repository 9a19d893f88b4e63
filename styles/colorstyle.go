package styles

import (
	"strconv"

	"github.com/cartokit/kmlstyle/kmltree"
)

// ColorMode controls color randomization. Normal leaves the base color
// untouched; random applies a random linear scale to it.
type ColorMode string

const (
	ColorModeNormal ColorMode = "normal"
	ColorModeRandom ColorMode = "random"
)

// ColorStyle carries the fields shared by IconStyle, LineStyle, PolyStyle,
// and LabelStyle. It is abstract: only embedded, never encoded on its own.
//
// Color is an aabbggrr hex string (see the kmlcolor package); empty means
// unset, and unset fields are omitted from output.
type ColorStyle struct {
	BaseObject
	Color     string
	ColorMode ColorMode
}

func (c *ColorStyle) encodeShared(el *kmltree.Element) {
	if c.Color != "" {
		el.Sub(c.NS, "color").Text = c.Color
	}
	if c.ColorMode != "" {
		el.Sub(c.NS, "colorMode").Text = string(c.ColorMode)
	}
}

// decodeShared reads the shared children. Absent fields stay unset; defaults
// are applied by constructors only, never during decode.
func (c *ColorStyle) decodeShared(el *kmltree.Element) {
	c.decodeBase(el)
	if cm := el.Find(c.NS, "colorMode"); cm != nil {
		c.ColorMode = ColorMode(cm.Text)
	}
	if col := el.Find(c.NS, "color"); col != nil {
		c.Color = col.Text
	}
}

// IconStyle specifies how icons for point placemarks are drawn.
type IconStyle struct {
	ColorStyle
	// Scale resizes the icon.
	Scale float64
	// Heading is a direction in degrees; 0 (North) is the default and is
	// not emitted.
	Heading float64
	// IconHref is an HTTP address or local file specification used to load
	// the icon. It is wrapped in a nested Icon/href structure on output.
	IconHref string
}

// NewIconStyle returns an IconStyle with viewer defaults (scale 1).
func NewIconStyle(ns, id string) *IconStyle {
	return &IconStyle{
		ColorStyle: ColorStyle{BaseObject: BaseObject{NS: ns, ID: id}},
		Scale:      1,
	}
}

func (s *IconStyle) Kind() StyleKind { return KindIcon }
func (s *IconStyle) subStyle()       {}

func (s *IconStyle) Encode() (*kmltree.Element, error) {
	el := s.element("IconStyle")
	s.encodeShared(el)
	el.Sub(s.NS, "scale").Text = formatFloat(s.Scale)
	if s.Heading != 0 {
		el.Sub(s.NS, "heading").Text = formatFloat(s.Heading)
	}
	if s.IconHref != "" {
		icon := el.Sub(s.NS, "Icon")
		icon.Sub(s.NS, "href").Text = s.IconHref
	}
	return el, nil
}

func (s *IconStyle) Decode(el *kmltree.Element) error {
	s.decodeShared(el)
	if sc := el.Find(s.NS, "scale"); sc != nil {
		v, err := parseFloat(sc.Text, "scale")
		if err != nil {
			return err
		}
		s.Scale = v
	}
	if h := el.Find(s.NS, "heading"); h != nil {
		v, err := parseFloat(h.Text, "heading")
		if err != nil {
			return err
		}
		s.Heading = v
	}
	if icon := el.Find(s.NS, "Icon"); icon != nil {
		if href := icon.Find(s.NS, "href"); href != nil {
			s.IconHref = href.Text
		}
	}
	return nil
}

// LineStyle specifies the drawing style for all line geometry, including
// polygon outlines and the extruded tether of placemark icons.
type LineStyle struct {
	ColorStyle
	// Width of the line, in pixels.
	Width float64
}

// NewLineStyle returns a LineStyle with viewer defaults (width 1).
func NewLineStyle(ns, id string) *LineStyle {
	return &LineStyle{
		ColorStyle: ColorStyle{BaseObject: BaseObject{NS: ns, ID: id}},
		Width:      1,
	}
}

func (s *LineStyle) Kind() StyleKind { return KindLine }
func (s *LineStyle) subStyle()       {}

func (s *LineStyle) Encode() (*kmltree.Element, error) {
	el := s.element("LineStyle")
	s.encodeShared(el)
	el.Sub(s.NS, "width").Text = formatFloat(s.Width)
	return el, nil
}

func (s *LineStyle) Decode(el *kmltree.Element) error {
	s.decodeShared(el)
	if w := el.Find(s.NS, "width"); w != nil {
		v, err := parseFloat(w.Text, "width")
		if err != nil {
			return err
		}
		s.Width = v
	}
	return nil
}

// PolyStyle specifies the drawing style for all polygons, including polygon
// and line extrusions. Fill and Outline are 0/1 flags; outlines use the
// current LineStyle.
type PolyStyle struct {
	ColorStyle
	Fill    int
	Outline int
}

// NewPolyStyle returns a PolyStyle with viewer defaults (filled, outlined).
func NewPolyStyle(ns, id string) *PolyStyle {
	return &PolyStyle{
		ColorStyle: ColorStyle{BaseObject: BaseObject{NS: ns, ID: id}},
		Fill:       1,
		Outline:    1,
	}
}

func (s *PolyStyle) Kind() StyleKind { return KindPoly }
func (s *PolyStyle) subStyle()       {}

func (s *PolyStyle) Encode() (*kmltree.Element, error) {
	el := s.element("PolyStyle")
	s.encodeShared(el)
	el.Sub(s.NS, "fill").Text = strconv.Itoa(s.Fill)
	el.Sub(s.NS, "outline").Text = strconv.Itoa(s.Outline)
	return el, nil
}

func (s *PolyStyle) Decode(el *kmltree.Element) error {
	s.decodeShared(el)
	if f := el.Find(s.NS, "fill"); f != nil {
		v, err := parseIntBool(f.Text, "fill")
		if err != nil {
			return err
		}
		s.Fill = v
	}
	if o := el.Find(s.NS, "outline"); o != nil {
		v, err := parseIntBool(o.Text, "outline")
		if err != nil {
			return err
		}
		s.Outline = v
	}
	return nil
}

// LabelStyle specifies how a feature's name is drawn in the viewer.
type LabelStyle struct {
	ColorStyle
	// Scale resizes the label.
	Scale float64
}

// NewLabelStyle returns a LabelStyle with viewer defaults (scale 1).
func NewLabelStyle(ns, id string) *LabelStyle {
	return &LabelStyle{
		ColorStyle: ColorStyle{BaseObject: BaseObject{NS: ns, ID: id}},
		Scale:      1,
	}
}

func (s *LabelStyle) Kind() StyleKind { return KindLabel }
func (s *LabelStyle) subStyle()       {}

func (s *LabelStyle) Encode() (*kmltree.Element, error) {
	el := s.element("LabelStyle")
	s.encodeShared(el)
	el.Sub(s.NS, "scale").Text = formatFloat(s.Scale)
	return el, nil
}

func (s *LabelStyle) Decode(el *kmltree.Element) error {
	s.decodeShared(el)
	if sc := el.Find(s.NS, "scale"); sc != nil {
		v, err := parseFloat(sc.Text, "scale")
		if err != nil {
			return err
		}
		s.Scale = v
	}
	return nil
}
