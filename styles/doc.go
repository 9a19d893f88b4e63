// Package styles models the KML styling sub-language: the elements that
// control how points, lines, polygons, labels, and description balloons are
// rendered by a viewer. Every type converts both ways between its in-memory
// form and a namespaced element tree (see the kmltree package).
//
// Two style selector shapes exist: Style, an ordered bundle of sub-styles,
// and StyleMap, which maps a normal and a highlighted style. The four color
// styles (IconStyle, LineStyle, PolyStyle, LabelStyle) share color and
// colorMode handling; BalloonStyle and StyleURL stand alone.
//
// Errors fall into three groups, none recovered locally:
//
//   - missing or unrecognized values (ErrNoURL, ErrPairKey, ErrPairEmpty)
//   - unsupported bundle members (ErrNotSubStyle)
//   - numeric text that fails conversion, surfaced as a wrapped
//     *strconv.NumError
//
// A failed Encode or Decode aborts the conversion for that object; the
// caller decides whether to skip or abort the surrounding document.
package styles
