package css

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.css")
	defer teardown()
	//
	table := Definitions()
	require.NotNil(t, table)
	color, ok := table.Find("color")
	require.True(t, ok)
	assert.True(t, color.Inherited)
	assert.True(t, color.Initial().IsKeyword("black"))
	margin, ok := table.Find("margin-top")
	require.True(t, ok)
	assert.False(t, margin.Inherited)
	assert.True(t, margin.Initial().Equal(style.Number(0)))
	custom, ok := table.Find("--main-color")
	require.True(t, ok)
	assert.True(t, custom.Inherited)
	_, ok = table.Find("-webkit-foo")
	assert.False(t, ok)
	assert.True(t, table.IsInherited("font-size"))
	assert.False(t, table.IsInherited("display"))
	assert.False(t, table.IsInherited("no-such-property"))
}

func TestCyclicDefinitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.css")
	defer teardown()
	//
	_, err := LoadDefinitions([]byte(`
- name: a
  shorthand: ordered
  syntax: [<any>]
  longhands: [b]
- name: b
  shorthand: ordered
  syntax: [<any>]
  longhands: [a]
`))
	assert.True(t, errors.Is(err, ErrCyclicShorthand), "expected cycle to be detected, got %v", err)
	_, err = LoadDefinitions([]byte(`
- name: a
  shorthand: pair
  longhands: [b, c]
`))
	assert.Error(t, err)
}

func TestValueGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.css")
	defer teardown()
	//
	table := Definitions()
	check := func(prop string, values ...style.Value) bool {
		def, ok := table.Find(prop)
		require.True(t, ok, prop)
		return def.MatchesAndShorthands(values, nil)
	}
	assert.True(t, check("color", style.Keyword("red")))
	assert.True(t, check("color", style.Function("rgb", style.Number(1), style.Delim(","),
		style.Number(2), style.Delim(","), style.Number(3))))
	assert.False(t, check("color", style.Dimension(12, "px")))
	assert.False(t, check("color", style.Keyword("red"), style.Keyword("blue")))
	assert.True(t, check("color", style.Keyword("inherit")))
	assert.True(t, check("width", style.Percentage(50)))
	assert.True(t, check("width", style.Number(0)))
	assert.False(t, check("width", style.Number(12)))
	assert.True(t, check("width", style.Function("calc", style.Percentage(50), style.Delim("-"),
		style.Dimension(1, "px"))))
	assert.True(t, check("z-index", style.Number(3)))
	assert.False(t, check("z-index", style.Number(3.5)))
	assert.True(t, check("font-family", style.Quoted("Times New Roman"), style.Delim(","),
		style.Keyword("serif")))
	assert.False(t, check("font-family", style.Keyword("serif"), style.Delim(",")))
	assert.True(t, check("--anything", style.Dimension(1, "px"), style.Keyword("x")))
	assert.False(t, check("margin", style.Number(0), style.Number(0), style.Number(0),
		style.Number(0), style.Number(0)))
}

func TestFourSidesDistribution(t *testing.T) {
	px := func(n float64) style.Value { return style.Dimension(n, "px") }
	lh := []string{"t", "r", "b", "l"}
	tests := []struct {
		values   []style.Value
		expected [4]float64
	}{
		{[]style.Value{px(1)}, [4]float64{1, 1, 1, 1}},
		{[]style.Value{px(1), px(2)}, [4]float64{1, 2, 1, 2}},
		{[]style.Value{px(1), px(2), px(3)}, [4]float64{1, 2, 3, 2}},
		{[]style.Value{px(1), px(2), px(3), px(4)}, [4]float64{1, 2, 3, 4}},
	}
	for _, test := range tests {
		exp := distributeFourSides(lh, test.values)
		for i := range exp {
			if exp[i].Property != lh[i] || exp[i].Value.Num != test.expected[i] {
				t.Errorf("%d values: expected %v, got %v", len(test.values), test.expected, exp)
				break
			}
		}
	}
}

func TestNestedShorthandExpansion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.css")
	defer teardown()
	//
	table := Definitions()
	border, _ := table.Find("border")
	fl := NewFixList()
	values := []style.Value{style.Dimension(1, "px"), style.Keyword("solid"), style.Keyword("red")}
	require.True(t, border.MatchesAndShorthands(values, fl))
	assert.Len(t, fl.Pending(), 3)
	candidate := style.DeclarationProperty{Origin: style.AuthorOrigin, Order: 42}
	assert.Equal(t, 3, fl.Commit(candidate))
	fl.ResolveNested(table)
	require.Equal(t, 12, fl.Len())
	once := fl.Obligations()
	fl.ResolveNested(table)
	assert.Equal(t, once, fl.Obligations(), "resolving must be idempotent")

	props := style.NewProperties()
	fl.Apply(props)
	assert.Equal(t, 0, fl.Len())
	assert.Equal(t, 12, props.Len())
	p, ok := props.Get("border-left-color")
	require.True(t, ok)
	require.Len(t, p.Declared, 1)
	assert.True(t, p.Declared[0].Value.IsKeyword("red"))
	assert.Equal(t, 42, p.Declared[0].Order)
	p, _ = props.Get("border-top-width")
	assert.True(t, p.Declared[0].Value.Equal(style.Dimension(1, "px")))
}

func TestShorthandMissingComponents(t *testing.T) {
	table := Definitions()
	border, _ := table.Find("border-top")
	fl := NewFixList()
	require.True(t, border.MatchesAndShorthands([]style.Value{style.Keyword("dashed")}, fl))
	pending := fl.Pending()
	require.Len(t, pending, 3)
	assert.True(t, pending[0].Value.IsKeyword("medium"))
	assert.True(t, pending[1].Value.IsKeyword("dashed"))
	assert.True(t, pending[2].Value.IsKeyword("currentcolor"))
	// a failed validation leaves nothing staged
	assert.False(t, border.MatchesAndShorthands([]style.Value{style.Quoted("x")}, fl))
	assert.Empty(t, fl.Pending())

	flex, _ := table.Find("flex")
	require.True(t, flex.MatchesAndShorthands([]style.Value{style.Number(2)}, fl))
	pending = fl.Pending()
	require.Len(t, pending, 3)
	assert.True(t, pending[0].Value.Equal(style.Number(2)))
	assert.True(t, pending[1].Value.Equal(style.Number(1)))
	assert.True(t, pending[2].Value.IsKeyword("auto"))

	margin, _ := table.Find("margin")
	require.True(t, margin.MatchesAndShorthands([]style.Value{style.Keyword("inherit")}, fl))
	for _, exp := range fl.Pending() {
		assert.True(t, exp.Value.IsKeyword("inherit"))
	}
}

func TestNestingGuard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.css")
	defer teardown()
	//
	// hand-made defective table, LoadDefinitions would reject it
	table := &Table{defs: make(map[string]*Definition)}
	for _, pair := range [][2]string{{"a", "b"}, {"b", "a"}} {
		table.defs[pair[0]] = &Definition{Name: pair[0], Shorthand: Ordered, Syntax: []string{"<any>"},
			Min: 1, Max: 1, Longhands: []string{pair[1]}, table: table}
	}
	fl := NewFixList()
	fl.stage(Expansion{"a", style.Keyword("x")})
	fl.Commit(style.DeclarationProperty{})
	fl.ResolveNested(table)
	assert.Equal(t, 0, fl.Len())
}
