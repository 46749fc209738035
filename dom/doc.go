/*
Package dom provides the document model the style-resolution core works on.

Overview

A Document is an arena of nodes. Every node is addressed by an opaque
NodeID; parent and child relations are id lookups, never ownership. A
document is built from a parse tree of golang.org/x/net/html, and every
node keeps a link to the HTML node it was created from, which is what
selector matching operates on.

Besides the node table, a document carries the environment of custom
properties ("--name: value"), defined per node during the cascade and
looked up along the ancestor chain when var() functions are resolved.

Tree Implementation

Styling involves a couple of different trees. The DOM itself is an arena
indexed by NodeID. The styled tree (package styledtree) is built on top of
the general purpose tree type of package tree and references DOM nodes by
their id.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylecore.dom'
func tracer() tracing.Trace {
	return tracing.Select("stylecore.dom")
}
