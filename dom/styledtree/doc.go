/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

A styled tree mirrors the renderable part of a document. Every styled
node refers to its document node by id and carries the style properties
computed for it. Nodes which will never be rendered, as well as comments
and doctype declarations, do not appear in the styled tree; neither do
their descendants.

The styled tree is built on top of the general purpose tree of package
tree. It is the render tree the inheritance pass of package cascade
walks.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecore.styledtree'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.styledtree")
}
