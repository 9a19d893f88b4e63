package styles

import "errors"

// Conversion errors.
var (
	// ErrNoURL is returned when a StyleURL with no target is encoded.
	ErrNoURL = errors.New("styles: no url given for styleUrl")

	// ErrPairKey is returned when a StyleMap Pair carries a key other than
	// the literal "normal" or "highlight", or no key at all.
	ErrPairKey = errors.New(`styles: Pair key must be "normal" or "highlight"`)

	// ErrPairEmpty is returned when a StyleMap Pair holds neither an inline
	// Style nor a styleUrl.
	ErrPairEmpty = errors.New("styles: Pair has neither a Style nor a styleUrl")

	// ErrNotSubStyle is returned when a Style bundle is asked to hold, or is
	// found holding, a value that is not one of the five sub-style kinds.
	ErrNotSubStyle = errors.New("styles: not a recognized sub-style")
)
