package styledtree

import (
	"fmt"

	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/stylecore/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	id                  dom.NodeID
	domNode             *dom.Node
	computedStyles      *style.Properties
}

// NewNodeForDOMNode creates a new styled node linked to a DOM node.
func NewNodeForDOMNode(n *dom.Node) *tree.Node[*StyNode] {
	sn := &StyNode{id: n.ID(), domNode: n}
	sn.Payload = sn // Payload will always reference the node itself
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// ID returns the id of the document node this styled node stands for.
func (sn *StyNode) ID() dom.NodeID {
	return sn.id
}

// DOMNode gets the document node corresponding to this styled node.
func (sn *StyNode) DOMNode() *dom.Node {
	return sn.domNode
}

// Styles returns the style properties of a styled node.
func (sn *StyNode) Styles() *style.Properties {
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.Properties) {
	sn.computedStyles = styles
}

// GetPropertyValue returns the actual value of a property. If the node
// has no actual value for key (e.g., before the inheritance pass has run),
// the nearest ancestor's actual value is returned, provided the ancestor
// has one.
func (sn *StyNode) GetPropertyValue(key string) (style.Value, bool) {
	for n := sn; n != nil; n = Node(n.Parent()) {
		if v, ok := n.computedStyles.Actual(key); ok {
			return v, true
		}
		tracer().P("key", key).Debugf("styling: cascading for key %s", key)
	}
	return style.None, false
}

func (sn *StyNode) String() string {
	return fmt.Sprintf("sty(%s)", sn.domNode)
}
