// Package kmltree provides the namespaced element tree used as the wire
// representation for KML style serialization.
//
// An Element is a plain value: a qualified name, attributes, direct text
// content, and an ordered list of children. The package also converts trees
// to and from XML byte streams, resolving namespace declarations on input
// and emitting a default-namespace declaration on output where needed.
package kmltree
