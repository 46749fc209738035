package douceuradapter

import (
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueComponents(t *testing.T) {
	v, err := ParseValue("1px solid red")
	require.NoError(t, err)
	require.Equal(t, style.KindList, v.Kind)
	assert.Len(t, v.Items, 3)
	assert.True(t, v.Items[0].Equal(style.Dimension(1, "px")))
	assert.True(t, v.Items[2].IsKeyword("red"))

	v, err = ParseValue("-5px")
	require.NoError(t, err)
	assert.True(t, v.Equal(style.Dimension(-5, "px")), v.String())

	v, err = ParseValue("#f00")
	require.NoError(t, err)
	assert.Equal(t, style.RGBA(color.RGBA{0xff, 0, 0, 0xff}), v)

	v, err = ParseValue(`"Times New Roman", serif`)
	require.NoError(t, err)
	require.Len(t, v.Items, 3)
	assert.Equal(t, style.Quoted("Times New Roman"), v.Items[0])
	assert.True(t, v.Items[1].IsDelim(","))

	v, err = ParseValue("url('a.png')")
	require.NoError(t, err)
	assert.True(t, v.IsFunction("url"))
	assert.Equal(t, "a.png", v.Items[0].Text)
}

func TestParseValueFunctions(t *testing.T) {
	v, err := ParseValue("calc(100% - (2 * 10px))")
	require.NoError(t, err)
	require.True(t, v.IsFunction("calc"), v.String())
	require.Len(t, v.Items, 3)
	assert.True(t, v.Items[0].Equal(style.Percentage(100)))
	assert.True(t, v.Items[1].IsDelim("-"))
	assert.True(t, v.Items[2].IsFunction(""))
	assert.Equal(t, "calc(100% - (2 * 10px))", v.String())

	v, err = ParseValue("var(--main-color, blue)")
	require.NoError(t, err)
	assert.True(t, v.IsFunction("var"))
	assert.True(t, v.Items[0].IsKeyword("--main-color"))

	_, err = ParseValue("calc(1px")
	assert.Error(t, err)
	_, err = ParseValue("1px)")
	assert.Error(t, err)
}

func TestParseStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.cssom")
	defer teardown()
	//
	text := `p { color: red; margin: 0 auto !important }
	@media print { p { color: blue } }
	@media screen { h1, h2 { color: green } }`
	sheet, err := ParseStyleSheet(text, style.AuthorOrigin, "test.css")
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)
	p := sheet.Rules[0]
	require.Len(t, p.Declarations, 2)
	assert.Equal(t, "margin", p.Declarations[1].Property)
	assert.True(t, p.Declarations[1].Important)
	assert.False(t, p.Declarations[0].Important)
	h := sheet.Rules[1]
	require.Len(t, h.Selectors, 2)
	assert.Equal(t, "h2", h.Selectors[1].Text)
	assert.Equal(t, style.AuthorOrigin, sheet.Origin)
}

func TestExtractStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.cssom")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<html><head><style>p { color: red }</style>` +
		`<style media="print">p { color: gray }</style></head>` +
		`<body><p style="color: blue; margin-top: 2px">x</p><em style="color: red">y</em></body></html>`))
	require.NoError(t, err)
	sheets, err := ExtractStyleElements(doc, "doc.html")
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Len(t, sheets[0].Rules, 1)

	inline, err := InlineStyles(doc, "doc.html")
	require.NoError(t, err)
	require.Len(t, inline.Rules, 2)
	assert.Len(t, inline.Rules[1].Declarations, 1)
	rule := inline.Rules[0]
	assert.Len(t, rule.Declarations, 2)
	ps, _ := doc.Query(dom.NewQuery(dom.FindFirst, dom.EqualsTag("p")))
	id, ok := rule.Selectors[0].Inline()
	assert.True(t, ok)
	assert.Equal(t, ps[0], id)
}

func TestInlineStyleWithoutTerminator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.cssom")
	defer teardown()
	//
	for _, text := range []string{"color: green", " color: green ", "width: 1px; color: green", "color: green;"} {
		rule, err := ParseInlineStyle(text, 7, "doc.html")
		require.NoError(t, err, text)
		require.NotEmpty(t, rule.Declarations, text)
		last := rule.Declarations[len(rule.Declarations)-1]
		assert.Equal(t, "color", last.Property, text)
		assert.True(t, last.Value.IsKeyword("green"), "%q: expected green, is %v", text, last.Value)
	}
	doc, err := dom.Parse(strings.NewReader(`<html><body><p style="color: green">x</p></body></html>`))
	require.NoError(t, err)
	inline, err := InlineStyles(doc, "doc.html")
	require.NoError(t, err)
	require.Len(t, inline.Rules, 1)
	assert.Len(t, inline.Rules[0].Declarations, 1)
}
