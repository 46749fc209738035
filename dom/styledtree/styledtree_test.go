package styledtree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/stylecore/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// computeAll renders everything the DOM considers renderable and gives
// every <div> a color.
func computeAll(doc *dom.Document, id dom.NodeID) (*style.Properties, bool) {
	n, _ := doc.NodeByID(id)
	if dom.NodeIsUnrenderable(n) {
		return nil, false
	}
	props := style.NewProperties()
	if n.Tag() == "div" {
		p := props.Ensure("color")
		p.Actual = style.Keyword("olive")
	}
	return props, true
}

func TestBuildOmitsUnrenderable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.styledtree")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<!DOCTYPE html><html><head><title>t</title></head>` +
		`<body><!-- c --><div><p>text</p> </div><script>x()</script></body></html>`))
	require.NoError(t, err)
	st, err := Build(doc, computeAll)
	require.NoError(t, err)
	assert.Equal(t, doc.Root(), st.Root())
	var names []string
	err = st.Walk(func(sn *StyNode, depth int) error {
		names = append(names, sn.DOMNode().NodeName())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"#document", "html", "body", "div", "p", "#text"}, names)
	assert.Equal(t, 6, st.Len())
	heads, _ := doc.Query(dom.NewQuery(dom.FindFirst, dom.EqualsTag("head")))
	_, ok := st.Node(heads[0])
	assert.False(t, ok)
	_, ok = st.Properties(heads[0])
	assert.False(t, ok)
	_, ok = st.Children(heads[0])
	assert.False(t, ok)
}

func TestStyledNodeAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.styledtree")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<html><body><div><p>text</p></div></body></html>`))
	require.NoError(t, err)
	st, err := Build(doc, computeAll)
	require.NoError(t, err)
	ps, _ := doc.Query(dom.NewQuery(dom.FindFirst, dom.EqualsTag("p")))
	sn, ok := st.Node(ps[0])
	require.True(t, ok)
	assert.Equal(t, ps[0], sn.ID())
	v, ok := sn.GetPropertyValue("color")
	assert.True(t, ok)
	assert.True(t, v.IsKeyword("olive"), "lookup walks up to the div")
	_, ok = sn.GetPropertyValue("width")
	assert.False(t, ok)
	div := Node(sn.Parent())
	require.NotNil(t, div)
	assert.Equal(t, "div", div.DOMNode().Tag())
	children, ok := st.Children(div.ID())
	require.True(t, ok)
	assert.Equal(t, []dom.NodeID{ps[0]}, children)
	leafs := tree.FindAll(&st.RootNode().Node, tree.NodeIsLeaf[*StyNode]())
	assert.Len(t, leafs, 1)
}

func TestBuildNothingRenderable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.styledtree")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<p>x</p>`))
	require.NoError(t, err)
	_, err = Build(doc, func(*dom.Document, dom.NodeID) (*style.Properties, bool) {
		return nil, false
	})
	assert.ErrorIs(t, err, ErrNoRenderTree)
}
