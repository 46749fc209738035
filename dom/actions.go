package dom

import "strings"

// NodePredicate is a predicate over nodes of a document.
type NodePredicate func(n *Node) bool

// NodeIsText is a predicate to match text-nodes of a DOM.
var NodeIsText NodePredicate = func(n *Node) bool {
	return n.kind == TextNode
}

// NodeIsElement is a predicate to match element nodes of a DOM.
var NodeIsElement NodePredicate = func(n *Node) bool {
	return n.kind == ElementNode
}

// NodeIsWhitespace matches text nodes consisting of nothing but white space.
var NodeIsWhitespace NodePredicate = func(n *Node) bool {
	return n.kind == TextNode && strings.TrimSpace(n.data) == ""
}

// unrenderableTags never produce visual output.
var unrenderableTags = map[string]bool{
	"head": true, "script": true, "style": true, "svg": true, "noscript": true, "title": true,
}

// NodeIsUnrenderable matches elements which will never be rendered
// (head, script, style, svg, noscript, title) and white-space-only text.
var NodeIsUnrenderable NodePredicate = func(n *Node) bool {
	if n.kind == ElementNode {
		return unrenderableTags[n.name]
	}
	return NodeIsWhitespace(n)
}

// Select collects all nodes of the document matching a predicate, in
// document order.
func (doc *Document) Select(pred NodePredicate) []NodeID {
	var ids []NodeID
	it := doc.Iterate(doc.Root())
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		if n, _ := doc.NodeByID(id); pred(n) {
			ids = append(ids, id)
		}
	}
	return ids
}
