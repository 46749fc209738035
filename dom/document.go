package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/stylecore/dom/style"
	"golang.org/x/net/html"
)

// NodeID addresses a node within its document.
type NodeID int

// NoNode is the id of no node, e.g. the parent of the root.
const NoNode NodeID = -1

// NodeKind is the variant of a DOM node.
type NodeKind uint8

// Kinds of DOM nodes.
const (
	DocumentNode NodeKind = iota
	DocTypeNode
	ElementNode
	TextNode
	CommentNode
)

func (k NodeKind) String() string {
	switch k {
	case DocumentNode:
		return "document"
	case DocTypeNode:
		return "doctype"
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	}
	return "unknown"
}

// Node is a node of a document.
type Node struct {
	id       NodeID
	kind     NodeKind
	name     string // element tag or doctype name
	data     string // text or comment content
	attrs    []html.Attribute
	classes  []string
	parent   NodeID
	children []NodeID
	hnode    *html.Node
}

// ID returns the id of the node within its document.
func (n *Node) ID() NodeID { return n.id }

// Kind returns the variant of the node.
func (n *Node) Kind() NodeKind { return n.kind }

// Parent returns the id of the parent node, or NoNode for the root.
func (n *Node) Parent() NodeID { return n.parent }

// HTML returns the HTML parse tree node this node has been created from.
func (n *Node) HTML() *html.Node { return n.hnode }

// NodeName returns the tag name of elements and "#text", "#comment",
// "#document" or "#doctype" for the other variants.
func (n *Node) NodeName() string {
	switch n.kind {
	case ElementNode:
		return n.name
	case TextNode:
		return "#text"
	case CommentNode:
		return "#comment"
	case DocTypeNode:
		return "#doctype"
	}
	return "#document"
}

// Tag returns the lower-case tag name of an element, or "".
func (n *Node) Tag() string {
	if n.kind != ElementNode {
		return ""
	}
	return n.name
}

// Text returns the content of text and comment nodes.
func (n *Node) Text() string { return n.data }

// Attr returns the value of an attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr checks for the presence of an attribute.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// Attributes returns the attributes of an element in document order.
func (n *Node) Attributes() []html.Attribute { return n.attrs }

// ElementID returns the value of the 'id' attribute, if any.
func (n *Node) ElementID() string {
	id, _ := n.Attr("id")
	return id
}

// Classes returns the class list of an element.
func (n *Node) Classes() []string { return n.classes }

// HasClass checks the class list of an element.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

func (n *Node) String() string {
	switch n.kind {
	case ElementNode:
		if id := n.ElementID(); id != "" {
			return fmt.Sprintf("<%s#%s>", n.name, id)
		}
		return "<" + n.name + ">"
	case TextNode:
		s := strings.TrimSpace(n.data)
		if len(s) > 12 {
			s = s[:12] + "…"
		}
		return fmt.Sprintf("%q", s)
	}
	return n.NodeName()
}

// --- Document --------------------------------------------------------------

// Document is an arena of DOM nodes, addressed by NodeID.
// The root of a document has id 0.
type Document struct {
	nodes  []*Node
	lookup map[*html.Node]NodeID
	custom map[NodeID]map[string]style.Value
}

// Parse reads an HTML document and builds a DOM from it.
func Parse(r io.Reader) (*Document, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot parse HTML: %w", err)
	}
	return FromHTML(h), nil
}

// FromHTML creates a document from an HTML parse tree. h will become the
// root of the document; usually this is an html.DocumentNode.
func FromHTML(h *html.Node) *Document {
	doc := &Document{
		lookup: make(map[*html.Node]NodeID),
		custom: make(map[NodeID]map[string]style.Value),
	}
	if h != nil {
		doc.add(h, NoNode)
	}
	tracer().Debugf("created document with %d nodes", len(doc.nodes))
	return doc
}

func (doc *Document) add(h *html.Node, parent NodeID) NodeID {
	n := &Node{id: NodeID(len(doc.nodes)), parent: parent, hnode: h}
	switch h.Type {
	case html.DocumentNode:
		n.kind = DocumentNode
	case html.DoctypeNode:
		n.kind, n.name = DocTypeNode, h.Data
	case html.TextNode:
		n.kind, n.data = TextNode, h.Data
	case html.CommentNode:
		n.kind, n.data = CommentNode, h.Data
	default:
		n.kind, n.name = ElementNode, strings.ToLower(h.Data)
		n.attrs = h.Attr
		if cls, ok := n.Attr("class"); ok {
			n.classes = strings.Fields(cls)
		}
	}
	doc.nodes = append(doc.nodes, n)
	doc.lookup[h] = n.id
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.RawNode || c.Type == html.ErrorNode {
			continue
		}
		n.children = append(n.children, doc.add(c, n.id))
	}
	return n.id
}

// Root returns the id of the root node of the document.
func (doc *Document) Root() NodeID {
	if doc == nil || len(doc.nodes) == 0 {
		return NoNode
	}
	return 0
}

// Len returns the number of nodes in the document.
func (doc *Document) Len() int {
	return len(doc.nodes)
}

// NodeByID looks up a node.
func (doc *Document) NodeByID(id NodeID) (*Node, bool) {
	if doc == nil || id < 0 || int(id) >= len(doc.nodes) {
		return nil, false
	}
	return doc.nodes[id], true
}

// Children returns the ids of the children of a node.
func (doc *Document) Children(id NodeID) ([]NodeID, bool) {
	n, ok := doc.NodeByID(id)
	if !ok {
		return nil, false
	}
	return n.children, true
}

// Parent returns the id of the parent of a node.
func (doc *Document) Parent(id NodeID) (NodeID, bool) {
	n, ok := doc.NodeByID(id)
	if !ok || n.parent == NoNode {
		return NoNode, false
	}
	return n.parent, true
}

// NodeOf finds the node created for an HTML parse tree node.
func (doc *Document) NodeOf(h *html.Node) (NodeID, bool) {
	id, ok := doc.lookup[h]
	return id, ok
}
