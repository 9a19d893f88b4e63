// Package kmlcolor handles KML color notation. Color and opacity values are
// expressed as eight hex digits in aabbggrr order: aa is alpha (00 fully
// transparent, ff fully opaque), then blue, green, red.
package kmlcolor

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Defaults a viewer applies when a balloon leaves the field unset.
const (
	OpaqueWhite = "ffffffff"
	OpaqueBlack = "ff000000"
)

// Parse converts an aabbggrr hex string into a color value.
func Parse(s string) (color.NRGBA, error) {
	t := strings.TrimSpace(s)
	if len(t) != 8 {
		return color.NRGBA{}, fmt.Errorf("kmlcolor: %q is not an aabbggrr value", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("kmlcolor: %q is not an aabbggrr value: %w", s, err)
	}
	return color.NRGBA{
		A: uint8(v >> 24),
		B: uint8(v >> 16),
		G: uint8(v >> 8),
		R: uint8(v),
	}, nil
}

// Format renders any color as an aabbggrr hex string.
func Format(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("%02x%02x%02x%02x", n.A, n.B, n.G, n.R)
}

// Named looks up an SVG 1.1 color name ("red", "steelblue", ...) and returns
// its fully opaque aabbggrr form. The lookup is case-insensitive.
func Named(name string) (string, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return Format(c), true
}
