package css_test

import (
	"testing"

	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/stylecore/dom/style/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestPositionBasic(t *testing.T) {
	a := css.Absolute(nil)
	var o []css.PositionOffset
	switch m := a.Match(); m {
	case m.Absolute(&o):
		t.Logf("offsets = %v", o)
	default:
		t.Errorf("expected Absolute() to be an absolute position, isn't: %#v", a)
	}

	static := css.Position(style.Keyword("static"))
	switch m := static.Match(); m {
	case m.IsKind(css.Static()):
		t.Logf("position is static")
	default:
		t.Errorf("expected position to match kind(static), isn't: %#v", static)
	}
	if !css.Position(style.Keyword("bogus")).IsUnset() {
		t.Errorf("expected illegal position to be unset")
	}
}

func TestPositionPattern(t *testing.T) {
	o := []css.PositionOffset{
		{css.JustDimen(10 * dimen.PT), css.Bottom},
	}
	f := css.Fixed(o)
	// now use it
	m := css.PositionPattern[int](f)
	out := m.OneOf(css.PositionPatterns[int]{
		Unset:   10,
		Fixed:   99,
		Default: -1,
	})
	if out != 99 {
		t.Errorf("expected out to be 99, isn't: %#v", out)
	}
	if len(f.Offsets()) != 4 {
		t.Errorf("expected 4 offsets, aren't: %#v", f.Offsets())
	}
}

func TestPositionOf(t *testing.T) {
	props := style.NewProperties()
	if p := css.PositionOf(props); p.Match().IsKind(css.Static()) == nil {
		t.Errorf("expected missing position to be static, is %v", p)
	}
	props.Ensure("position").Actual = style.Keyword("relative")
	props.Ensure("top").Actual = style.Dimension(10, "pt")
	props.Ensure("left").Actual = style.Percentage(5)
	p := css.PositionOf(props)
	if !p.IsRelative() {
		t.Fatalf("expected relative position, is %v", p)
	}
	var du dimen.DU
	if p.Offsets()[css.Top].Dim.Match().Just(&du) == nil || du != 10*dimen.PT {
		t.Errorf("expected top offset of 10pt, is %v", p.Offsets()[css.Top].Dim)
	}
	var pcnt float64
	if p.Offsets()[css.Left].Dim.Match().Percentage(&pcnt) == nil || pcnt != 5 {
		t.Errorf("expected left offset of 5%%, is %v", p.Offsets()[css.Left].Dim)
	}
	if !p.Offsets()[css.Right].Dim.IsNone() {
		t.Errorf("expected right offset to be unset")
	}
}

func TestDimenFromValue(t *testing.T) {
	var du dimen.DU
	if css.DimenFromValue(style.Dimension(8, "px")).Match().Just(&du) == nil || du != 6*dimen.PT {
		t.Errorf("expected 8px to be 6pt, is %v", du)
	}
	if css.DimenFromValue(style.Keyword("auto")).Match().IsKind(css.Auto()) == nil {
		t.Errorf("expected auto")
	}
	if css.DimenFromValue(style.Keyword("inherit")).Match().IsKind(css.Auto()) != nil {
		t.Errorf("expected inherit not to match auto")
	}
	em := css.DimenFromValue(style.Dimension(2, "em"))
	if em.Match().IsKind(css.RelativeDimen(1, "em")) == nil || em.String() != "2em" {
		t.Errorf("expected 2em to be font relative, is %v", em)
	}
	d := css.DimenFromValue(style.Percentage(80))
	m := css.DimenPattern[string](d)
	out := m.OneOf(css.DimenPatterns[string]{
		Just:    "just",
		Percent: "percent",
		Default: "default",
	})
	if out != "percent" {
		t.Errorf("expected pattern to match percentage, got %s", out)
	}
}

func TestDisplayOf(t *testing.T) {
	props := style.NewProperties()
	if css.DisplayOf(props) != css.InlineMode|css.InnerInlineMode {
		t.Errorf("expected default display to be inline")
	}
	props.Ensure("display").Actual = style.Keyword("list-item")
	disp := css.DisplayOf(props)
	if !disp.IsBlockLevel() || !disp.Contains(css.ListItemMode) {
		t.Errorf("expected list-item to be block level, is %s", disp.FullString())
	}
	if _, err := css.ParseDisplay("wobbly"); err == nil {
		t.Errorf("expected error for unknown display mode")
	}
}
