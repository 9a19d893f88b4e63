package styles

import (
	"github.com/google/uuid"

	"github.com/cartokit/kmlstyle/kmltree"
)

// BaseObject carries the fields every styleable object shares: the namespace
// URI applied to each generated tag (empty means unnamespaced) and the
// optional id used for cross-referencing. It is embedded, never used alone.
type BaseObject struct {
	NS string
	ID string
}

// element builds the object's root element: the qualified tag plus an id
// attribute when one is set.
func (o *BaseObject) element(local string) *kmltree.Element {
	el := kmltree.New(o.NS, local)
	if o.ID != "" {
		el.SetAttr("id", o.ID)
	}
	return el
}

// decodeBase takes namespace and id from an already-located element.
func (o *BaseObject) decodeBase(el *kmltree.Element) {
	o.NS = el.Name.Space
	if id := el.Attr("id"); id != "" {
		o.ID = id
	}
}

// EnsureID returns the object's id, generating and assigning one first if it
// is empty. Shared styles need an id so features can reference them.
func (o *BaseObject) EnsureID() string {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return o.ID
}
