package cascade

import (
	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/stylecore/persistent/vector"
)

// RenderTree is the tree the inheritance propagator walks. Properties
// returns the mutable property map of a node.
type RenderTree interface {
	Root() dom.NodeID
	Properties(id dom.NodeID) (*style.Properties, bool)
	Children(id dom.NodeID) ([]dom.NodeID, bool)
}

// InheritedProperty is a property value flowing from an ancestor to its
// descendants.
type InheritedProperty struct {
	Name  string
	Value style.Value
}

// Inherited is the ordered set of property values flowing from the
// ancestors of a node to the node. It is immutable, extending it for a
// subtree leaves the set of the siblings untouched.
type Inherited = vector.Vector[InheritedProperty]

// Inheritance computes the actual values of all properties of a render
// tree, starting at the root with nothing inherited.
func (c *Cascade) Inheritance(tree RenderTree) {
	c.Propagate(tree, tree.Root(), Inherited{})
}

// Propagate computes the actual values of the properties of a node and
// recurses into the node's children.
//
// Every entry of inherited is seeded into the node's properties. Then the
// actual value of every property of the node is computed. Properties
// inherited by default pass their actual value on to the children,
// replacing the value of a more distant ancestor. Children receive the
// extended set, which is a copy: siblings never see each other's values.
//
// A node id unknown to tree ends the walk silently.
func (c *Cascade) Propagate(tree RenderTree, id dom.NodeID, inherited Inherited) {
	props, ok := tree.Properties(id)
	if !ok || props == nil {
		return
	}
	index := make(map[string]int, inherited.Len())
	inherited.Each(func(i int, ip InheritedProperty) {
		props.InsertInherited(ip.Name, ip.Value)
		index[ip.Name] = i
	})
	next := inherited
	props.Each(func(name string, p *style.Property) {
		def, known := c.table.Find(name)
		inheritable := known && def.Inherited && !def.IsShorthand()
		initial := style.None
		if known {
			initial = def.Initial()
		}
		p.ComputeValue(inheritable, initial)
		if !inheritable || p.Actual.IsNone() {
			return
		}
		ip := InheritedProperty{Name: name, Value: p.Actual}
		if i, ok := index[name]; ok {
			next = next.Set(i, ip)
			return
		}
		index[name] = next.Len()
		next = next.Push(ip)
	})
	children, ok := tree.Children(id)
	if !ok {
		return
	}
	for _, ch := range children {
		c.Propagate(tree, ch, next)
	}
}
