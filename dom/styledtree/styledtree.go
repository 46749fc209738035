package styledtree

import (
	"errors"

	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/stylecore/tree"
)

// ErrNoRenderTree is returned by Build if not even the root of a document
// is renderable.
var ErrNoRenderTree = errors.New("document has no renderable nodes")

// ComputeFunc computes the style properties of a document node. It returns
// false for nodes which will not be rendered.
type ComputeFunc func(doc *dom.Document, id dom.NodeID) (*style.Properties, bool)

// Tree is a styled tree for a document.
type Tree struct {
	doc   *dom.Document
	root  *StyNode
	index map[dom.NodeID]*StyNode
}

// Build creates the styled tree of a document. Starting at the document
// root, compute is called for every node in preorder. Subtrees of nodes for
// which compute returns false are omitted, as are comment and doctype
// nodes.
func Build(doc *dom.Document, compute ComputeFunc) (*Tree, error) {
	t := &Tree{doc: doc, index: make(map[dom.NodeID]*StyNode)}
	doc.ClearCustomProperties()
	root := doc.Root()
	t.root = t.build(root, nil, compute)
	if t.root == nil {
		return nil, ErrNoRenderTree
	}
	tracer().Debugf("styled tree with %d nodes", len(t.index))
	return t, nil
}

func (t *Tree) build(id dom.NodeID, parent *StyNode, compute ComputeFunc) *StyNode {
	n, ok := t.doc.NodeByID(id)
	if !ok {
		return nil
	}
	switch n.Kind() {
	case dom.CommentNode, dom.DocTypeNode:
		return nil
	}
	props, ok := compute(t.doc, id)
	if !ok {
		tracer().Debugf("node %s will not be rendered", n)
		return nil
	}
	sn := Node(NewNodeForDOMNode(n))
	sn.SetStyles(props)
	t.index[id] = sn
	if parent != nil {
		parent.AddChild(&sn.Node)
	}
	children, _ := t.doc.Children(id)
	for _, ch := range children {
		t.build(ch, sn, compute)
	}
	return sn
}

// Document returns the document a styled tree has been built for.
func (t *Tree) Document() *dom.Document {
	return t.doc
}

// Root returns the id of the root node.
func (t *Tree) Root() dom.NodeID {
	if t.root == nil {
		return dom.NoNode
	}
	return t.root.id
}

// RootNode returns the root of the styled tree.
func (t *Tree) RootNode() *StyNode {
	return t.root
}

// Node returns the styled node for a document node, if the document node
// is rendered.
func (t *Tree) Node(id dom.NodeID) (*StyNode, bool) {
	sn, ok := t.index[id]
	return sn, ok
}

// Properties returns the style properties of a node.
func (t *Tree) Properties(id dom.NodeID) (*style.Properties, bool) {
	sn, ok := t.index[id]
	if !ok {
		return nil, false
	}
	return sn.computedStyles, true
}

// Children returns the ids of the rendered children of a node.
func (t *Tree) Children(id dom.NodeID) ([]dom.NodeID, bool) {
	sn, ok := t.index[id]
	if !ok {
		return nil, false
	}
	children := sn.Children(true)
	ids := make([]dom.NodeID, len(children))
	for i, ch := range children {
		ids[i] = ch.Payload.id
	}
	return ids, true
}

// Len returns the number of nodes of the styled tree.
func (t *Tree) Len() int {
	return len(t.index)
}

// Walk visits all nodes of the styled tree in preorder.
func (t *Tree) Walk(action func(sn *StyNode, depth int) error) error {
	if t.root == nil {
		return tree.ErrEmptyTree
	}
	return tree.TopDown(&t.root.Node, func(n *tree.Node[*StyNode], depth int) error {
		return action(n.Payload, depth)
	})
}
