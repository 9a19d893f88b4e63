package styles

import "github.com/cartokit/kmlstyle/kmltree"

// StyleURL references a Style or StyleMap defined elsewhere. For a style in
// the same document the URL is a # fragment; for an external file it is a
// full URL with # referencing.
type StyleURL struct {
	BaseObject
	URL string
}

// NewStyleURL returns a reference to the given URL or fragment.
func NewStyleURL(ns, url string) *StyleURL {
	return &StyleURL{BaseObject: BaseObject{NS: ns}, URL: url}
}

func (u *StyleURL) pairValue() {}

// Encode fails with ErrNoURL when the URL is empty: a style reference with
// no target must not emit an empty tag.
func (u *StyleURL) Encode() (*kmltree.Element, error) {
	if u.URL == "" {
		return nil, ErrNoURL
	}
	el := u.element("styleUrl")
	el.Text = u.URL
	return el, nil
}

// Decode takes the element text verbatim; the URL shape is not validated.
func (u *StyleURL) Decode(el *kmltree.Element) error {
	u.decodeBase(el)
	u.URL = el.Text
	return nil
}
