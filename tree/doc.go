/*
Package tree implements a small all-purpose tree type.

Nodes carry a payload of a type parameter T and keep an ordered slice of
children. Styled trees and other document-derived trees are built by
embedding a tree.Node in the node type of the specific tree and pointing
the payload back to the embedding node.

Traversal is synchronous. Walks visit a parent strictly before any of its
children, so state computed at a parent is complete when a child is
visited.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylecore.tree'.
func tracer() tracing.Trace {
	return tracing.Select("stylecore.tree")
}

// ErrEmptyTree is returned if a walk is started on an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrSkipChildren may be returned by a walk action to suppress the
// descent into the children of the current node.
var ErrSkipChildren = errors.New("skip children")
