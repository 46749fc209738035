package cascade

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/stretchr/testify/assert"
)

// mapTree is a render tree for testing. Children may reference ids
// without properties.
type mapTree struct {
	props    map[dom.NodeID]*style.Properties
	children map[dom.NodeID][]dom.NodeID
}

func (m mapTree) Root() dom.NodeID { return 0 }

func (m mapTree) Properties(id dom.NodeID) (*style.Properties, bool) {
	p, ok := m.props[id]
	return p, ok
}

func (m mapTree) Children(id dom.NodeID) ([]dom.NodeID, bool) {
	ch, ok := m.children[id]
	return ch, ok
}

func declare(props *style.Properties, name string, v style.Value, order int) {
	props.AddDeclared(name, style.DeclarationProperty{
		Value:  v,
		Origin: style.AuthorOrigin,
		Order:  order,
	})
}

func TestPropagateSiblingsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.cascade")
	defer teardown()
	//
	tree := mapTree{
		props:    make(map[dom.NodeID]*style.Properties),
		children: map[dom.NodeID][]dom.NodeID{0: {1, 2, 99}, 1: {3}, 2: {4}},
	}
	for id := dom.NodeID(0); id <= 4; id++ {
		tree.props[id] = style.NewProperties()
	}
	declare(tree.props[0], "color", style.Keyword("red"), 1)
	declare(tree.props[0], "width", style.Dimension(10, "px"), 2)
	declare(tree.props[1], "color", style.Keyword("green"), 3)
	declare(tree.props[2], "font-size", style.Dimension(20, "px"), 4)
	c := New(nil)
	c.Inheritance(tree)
	//
	color := func(id dom.NodeID) string {
		v, _ := tree.props[id].Actual("color")
		return v.String()
	}
	assert.Equal(t, "red", color(0))
	assert.Equal(t, "green", color(1))
	assert.Equal(t, "green", color(3))
	assert.Equal(t, "red", color(2), "sibling must not see green")
	assert.Equal(t, "red", color(4))
	_, ok := tree.props[4].Get("width")
	assert.False(t, ok, "width is not inherited")
	fs, ok := tree.props[4].Actual("font-size")
	assert.True(t, ok)
	assert.True(t, fs.Equal(style.Dimension(20, "px")))
	_, ok = tree.props[3].Get("font-size")
	assert.False(t, ok)
	p, _ := tree.props[3].Get("color")
	assert.True(t, p.Inherited.IsKeyword("green"), "inherited slot holds the nearest ancestor's value")
}

func TestComputeInitialAndUnset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.cascade")
	defer teardown()
	//
	tree := mapTree{
		props:    map[dom.NodeID]*style.Properties{0: style.NewProperties(), 1: style.NewProperties()},
		children: map[dom.NodeID][]dom.NodeID{0: {1}},
	}
	declare(tree.props[0], "color", style.Keyword("navy"), 1)
	declare(tree.props[0], "display", style.Keyword("block"), 2)
	declare(tree.props[1], "color", style.Keyword("initial"), 3)
	declare(tree.props[1], "display", style.Keyword("unset"), 4)
	New(nil).Inheritance(tree)
	c, _ := tree.props[1].Actual("color")
	assert.True(t, c.IsKeyword("black"))
	d, _ := tree.props[1].Actual("display")
	assert.True(t, d.IsKeyword("inline"))
}
