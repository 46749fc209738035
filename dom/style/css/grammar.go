package css

import (
	"math"
	"strings"

	"github.com/npillmayer/stylecore/dom/style"
)

// MatchesAndShorthands validates the components of a resolved declaration
// value against the grammar of the property. For shorthand properties the
// longhand expansion is staged in fl; it becomes an obligation only when the
// caller commits it (see FixList.Commit). Anything staged by a previous,
// uncommitted validation is discarded. fl may be nil for validation only.
func (d *Definition) MatchesAndShorthands(values []style.Value, fl *FixList) bool {
	fl.discard()
	if !d.IsShorthand() {
		return d.matches(values)
	}
	expansion, ok := d.expand(values)
	if !ok {
		return false
	}
	fl.stage(expansion...)
	return true
}

// matches validates components against the grammar of a property, without
// considering shorthand expansion.
func (d *Definition) matches(values []style.Value) bool {
	if len(values) == 1 && values[0].IsCSSWide() {
		return true
	}
	if d.acceptsAny() {
		return true
	}
	if d.Comma {
		groups := splitAtCommas(values)
		if len(groups) == 0 {
			return false
		}
		for _, g := range groups {
			if !d.matchesSequence(g, 1) {
				return false
			}
		}
		return true
	}
	return d.matchesSequence(values, d.Min)
}

func (d *Definition) matchesSequence(values []style.Value, min int) bool {
	if len(values) < min || (d.Max >= 0 && len(values) > d.Max) {
		return false
	}
	for _, v := range values {
		if !d.acceptsComponent(v) {
			return false
		}
	}
	return true
}

func (d *Definition) acceptsAny() bool {
	for _, alt := range d.Syntax {
		if alt == "<any>" {
			return true
		}
	}
	return false
}

// acceptsComponent checks a single component against the syntax
// alternatives of the property.
func (d *Definition) acceptsComponent(v style.Value) bool {
	for _, alt := range d.Syntax {
		if strings.HasPrefix(alt, "<") {
			if matchesDataType(v, alt) {
				return true
			}
		} else if v.IsKeyword(alt) {
			return true
		}
	}
	return false
}

func splitAtCommas(values []style.Value) [][]style.Value {
	var groups [][]style.Value
	start := 0
	for i, v := range values {
		if v.IsDelim(",") {
			groups = append(groups, values[start:i])
			start = i + 1
		}
	}
	return append(groups, values[start:])
}

// --- Data types --------------------------------------------------------------

var lengthUnits = map[string]bool{
	"px": true, "pt": true, "pc": true, "in": true, "cm": true, "mm": true, "q": true,
	"em": true, "rem": true, "ex": true, "ch": true,
	"vw": true, "vh": true, "vmin": true, "vmax": true,
}

func matchesDataType(v style.Value, typ string) bool {
	switch typ {
	case "<any>":
		return true
	case "<length>":
		return isLength(v) || isMath(v)
	case "<percentage>":
		return v.Kind == style.KindPercentage || isMath(v)
	case "<length-percentage>":
		return isLength(v) || v.Kind == style.KindPercentage || isMath(v)
	case "<number>":
		return v.Kind == style.KindNumber || isMath(v)
	case "<integer>":
		return v.Kind == style.KindNumber && v.Num == math.Trunc(v.Num)
	case "<string>":
		return v.Kind == style.KindString
	case "<color>":
		return isColor(v)
	case "<image>":
		return v.IsFunction("url") || v.IsFunction("linear-gradient") ||
			v.IsFunction("radial-gradient") || v.IsFunction("repeating-linear-gradient") ||
			v.IsFunction("repeating-radial-gradient")
	case "<custom-ident>":
		return v.Kind == style.KindKeyword && !v.IsCSSWide() && v.Text != "default"
	}
	tracer().Errorf("property definition uses unknown data type %s", typ)
	return false
}

func isLength(v style.Value) bool {
	switch v.Kind {
	case style.KindDimension:
		return lengthUnits[v.Unit]
	case style.KindNumber:
		return v.Num == 0
	}
	return false
}

// isMath matches math functions which could not be resolved to a single
// value, e.g. calc() mixing percentages and lengths.
func isMath(v style.Value) bool {
	return v.IsFunction("calc") || v.IsFunction("min") || v.IsFunction("max") || v.IsFunction("clamp")
}

func isColor(v style.Value) bool {
	switch v.Kind {
	case style.KindColor:
		return true
	case style.KindKeyword:
		if v.Text == "currentcolor" {
			return true
		}
		_, ok := style.NamedColor(v.Text)
		return ok
	case style.KindFunction:
		switch v.Text {
		case "rgb", "rgba", "hsl", "hsla":
			return true
		}
	}
	return false
}

// --- Shorthand expansion -------------------------------------------------------

// Expansion is a single longhand write implied by a shorthand.
type Expansion struct {
	Property string
	Value    style.Value
}

// expand distributes the components of a shorthand value to its longhands.
func (d *Definition) expand(values []style.Value) ([]Expansion, bool) {
	if len(values) == 1 && values[0].IsCSSWide() {
		exp := make([]Expansion, len(d.Longhands))
		for i, lh := range d.Longhands {
			exp[i] = Expansion{lh, values[0]}
		}
		return exp, true
	}
	if len(values) < d.Min || len(values) > d.Max {
		return nil, false
	}
	switch d.Shorthand {
	case FourSides, Pair:
		for _, v := range values {
			if !d.acceptsComponent(v) {
				return nil, false
			}
		}
		if d.Shorthand == Pair {
			return distributePair(d.Longhands, values), true
		}
		return distributeFourSides(d.Longhands, values), true
	case Ordered:
		return d.expandOrdered(values)
	case AnyOrder:
		return d.expandAnyOrder(values)
	}
	return nil, false
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func distributeFourSides(longhands []string, values []style.Value) []Expansion {
	// index of the component for top, right, bottom, left
	pick := [5][4]int{
		1: {0, 0, 0, 0},
		2: {0, 1, 0, 1},
		3: {0, 1, 2, 1},
		4: {0, 1, 2, 3},
	}[len(values)]
	exp := make([]Expansion, 4)
	for i := range exp {
		exp[i] = Expansion{longhands[i], values[pick[i]]}
	}
	return exp
}

func distributePair(longhands []string, values []style.Value) []Expansion {
	second := values[0]
	if len(values) == 2 {
		second = values[1]
	}
	return []Expansion{{longhands[0], values[0]}, {longhands[1], second}}
}

func (d *Definition) expandOrdered(values []style.Value) ([]Expansion, bool) {
	exp := make([]Expansion, len(d.Longhands))
	for i, lh := range d.Longhands {
		lhdef, _ := d.table.Find(lh)
		if i >= len(values) {
			exp[i] = Expansion{lh, lhdef.Initial()}
			continue
		}
		if !lhdef.acceptsComponent(values[i]) {
			return nil, false
		}
		exp[i] = Expansion{lh, values[i]}
	}
	return exp, true
}

func (d *Definition) expandAnyOrder(values []style.Value) ([]Expansion, bool) {
	assigned := make([]style.Value, len(d.Longhands))
	for _, v := range values {
		found := false
		for i, lh := range d.Longhands {
			if !assigned[i].IsNone() {
				continue
			}
			if lhdef, _ := d.table.Find(lh); lhdef.acceptsComponent(v) {
				assigned[i] = v
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	exp := make([]Expansion, len(d.Longhands))
	for i, lh := range d.Longhands {
		if assigned[i].IsNone() {
			lhdef, _ := d.table.Find(lh)
			assigned[i] = lhdef.Initial()
		}
		exp[i] = Expansion{lh, assigned[i]}
	}
	return exp, true
}
