package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/stylecore/dom/styledtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styledTestTree(t *testing.T) *styledtree.Tree {
	doc, err := dom.Parse(strings.NewReader(`<html><body><div id="main" class="c">Hello World</div></body></html>`))
	require.NoError(t, err)
	st, err := styledtree.Build(doc, func(doc *dom.Document, id dom.NodeID) (*style.Properties, bool) {
		props := style.NewProperties()
		if n, _ := doc.NodeByID(id); n.Tag() == "div" {
			props.Ensure("margin-top").Actual = style.Dimension(2, "px")
			props.Ensure("color").Actual = style.Keyword("red")
		}
		return props, true
	})
	require.NoError(t, err)
	return st
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.dom")
	defer teardown()
	//
	st := styledTestTree(t)
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(st, &buf, nil))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `label="div"`)
	assert.Contains(t, out, "margin-top:</td><td>2px")
	assert.NotContains(t, out, "color:")
	assert.Contains(t, out, "Hello␣Worl...")
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.dom")
	defer teardown()
	//
	st := styledTestTree(t)
	var buf bytes.Buffer
	require.NoError(t, Dump(st, &buf, "color"))
	out := buf.String()
	t.Log("\n" + out)
	assert.Contains(t, out, "div#main.c")
	assert.Contains(t, out, "[color]")
	assert.Contains(t, out, "red")
	assert.NotContains(t, out, "margin-top")
	buf.Reset()
	require.NoError(t, Dump(st, &buf))
	assert.Contains(t, buf.String(), "[margin-top]")
}

func TestDumpLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.dom")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<html><body><div>x</div><span>y</span></body></html>`))
	require.NoError(t, err)
	st, err := styledtree.Build(doc, func(doc *dom.Document, id dom.NodeID) (*style.Properties, bool) {
		props := style.NewProperties()
		if n, _ := doc.NodeByID(id); n.Tag() == "div" {
			props.Ensure("display").Actual = style.Keyword("block")
			props.Ensure("position").Actual = style.Keyword("relative")
			props.Ensure("top").Actual = style.Dimension(2, "em")
		}
		return props, true
	})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Dump(st, &buf, "color"))
	out := buf.String()
	t.Log("\n" + out)
	assert.Contains(t, out, "▩ relative top=2em")
	assert.Contains(t, out, "►") // <span> is inline
	assert.Contains(t, out, `"x"`)
}
