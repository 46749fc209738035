package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSpecificityOrder(t *testing.T) {
	a := Specificity{0, 1, 0, 0}
	b := Specificity{0, 0, 12, 3}
	if !b.Less(a) {
		t.Errorf("expected %s < %s", b, a)
	}
	if InlineSpecificity.Compare(a) != 1 {
		t.Errorf("expected inline specificity to beat %s", a)
	}
	if a.Compare(a) != 0 {
		t.Errorf("expected %s to equal itself", a)
	}
}

func TestCascadeLayers(t *testing.T) {
	layers := []struct {
		origin    Origin
		important bool
	}{
		{UserAgentOrigin, false},
		{UserOrigin, false},
		{AuthorOrigin, false},
		{AuthorOrigin, true},
		{UserOrigin, true},
		{UserAgentOrigin, true},
	}
	for i := 1; i < len(layers); i++ {
		lo, hi := layers[i-1], layers[i]
		if cascadeLayer(lo.origin, lo.important) >= cascadeLayer(hi.origin, hi.important) {
			t.Errorf("expected layer of %s/%v to be below %s/%v",
				lo.origin, lo.important, hi.origin, hi.important)
		}
	}
}

func TestWinnerImportantBeatsSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.style")
	defer teardown()
	//
	p := NewProperty("color")
	p.Declared = append(p.Declared,
		DeclarationProperty{Value: Keyword("red"), Origin: AuthorOrigin, Important: true,
			Specificity: Specificity{0, 0, 0, 1}, Order: 0},
		DeclarationProperty{Value: Keyword("blue"), Origin: AuthorOrigin,
			Specificity: Specificity{0, 1, 0, 0}, Order: 1},
	)
	p.ComputeValue(true, Keyword("black"))
	if !p.Actual.IsKeyword("red") {
		t.Errorf("expected !important red to win, got %s", p.Actual)
	}
}

func TestWinnerSourceOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.style")
	defer teardown()
	//
	p := NewProperty("margin-top")
	s := Specificity{0, 0, 1, 0}
	p.Declared = append(p.Declared,
		DeclarationProperty{Value: Dimension(1, "px"), Origin: AuthorOrigin, Specificity: s, Order: 7},
		DeclarationProperty{Value: Dimension(2, "px"), Origin: AuthorOrigin, Specificity: s, Order: 3},
	)
	win, ok := p.Winner()
	if !ok || !win.Value.Equal(Dimension(1, "px")) {
		t.Errorf("expected later declaration to win, got %v", win)
	}
}

func TestComputeValueKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.style")
	defer teardown()
	//
	initial := Keyword("medium")
	parent := Dimension(20, "px")
	tests := []struct {
		declared    Value
		inheritable bool
		inherited   Value
		expected    Value
	}{
		{Keyword("inherit"), false, parent, parent},
		{Keyword("inherit"), false, None, initial},
		{Keyword("initial"), true, parent, initial},
		{Keyword("unset"), true, parent, parent},
		{Keyword("unset"), false, parent, initial},
		{Keyword("revert"), true, parent, parent},
		{None, true, parent, parent},
		{None, true, None, initial},
		{None, false, parent, initial},
		{Dimension(3, "em"), true, parent, Dimension(3, "em")},
	}
	for i, test := range tests {
		p := NewProperty("font-size")
		if !test.declared.IsNone() {
			p.Declared = append(p.Declared, DeclarationProperty{Value: test.declared, Origin: AuthorOrigin})
		}
		p.Inherited = test.inherited
		p.ComputeValue(test.inheritable, initial)
		if !p.Actual.Equal(test.expected) {
			t.Errorf("test #%d: expected %s, got %s", i, test.expected, p.Actual)
		}
	}
}

func TestPropertiesInsertionOrder(t *testing.T) {
	props := NewProperties()
	props.AddDeclared("color", DeclarationProperty{Value: Keyword("red")})
	props.InsertInherited("font-size", Dimension(12, "pt"))
	props.AddDeclared("color", DeclarationProperty{Value: Keyword("blue"), Order: 1})
	names := props.Names()
	if len(names) != 2 || names[0] != "color" || names[1] != "font-size" {
		t.Errorf("expected [color font-size], got %v", names)
	}
	p, _ := props.Get("color")
	if len(p.Declared) != 2 {
		t.Errorf("expected 2 candidates for color, got %d", len(p.Declared))
	}
	var nilProps *Properties
	if nilProps.Len() != 0 {
		t.Errorf("expected nil properties to be empty")
	}
	if _, ok := nilProps.Actual("color"); ok {
		t.Errorf("expected nil properties to have no values")
	}
}
