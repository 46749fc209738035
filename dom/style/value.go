package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

// Kinds of CSS values. KindDelim covers separators and operators (',', '/',
// '+', '-', '*') which appear inside lists and function arguments.
const (
	KindNone ValueKind = iota // absent value
	KindKeyword
	KindNumber
	KindPercentage
	KindDimension
	KindString
	KindColor
	KindFunction
	KindList
	KindDelim
)

var kindNames = [...]string{"none", "keyword", "number", "percentage", "dimension",
	"string", "color", "function", "list", "delim"}

func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a CSS value, a tagged union over keywords, numbers, percentages,
// dimensions, strings, colors, unevaluated functions and lists.
//
// Lists are the uniform container both for multi-value properties and for
// the results of function resolution. A function with an empty name is a
// parenthesised group, as it may appear inside calc().
type Value struct {
	Kind  ValueKind
	Text  string     // keyword, string content, delimiter or function name
	Num   float64    // number, percentage or dimension amount
	Unit  string     // unit of a dimension, lower case
	Color color.RGBA // color value
	Items []Value    // function arguments or list elements
}

// None is the absent value.
var None = Value{}

// Keyword creates an identifier value. Keywords are case-insensitive and
// stored in lower case.
func Keyword(k string) Value {
	return Value{Kind: KindKeyword, Text: strings.ToLower(k)}
}

// Number creates a unit-less number.
func Number(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// Percentage creates a percentage, e.g. Percentage(50) for 50%.
func Percentage(p float64) Value {
	return Value{Kind: KindPercentage, Num: p}
}

// Dimension creates a number with a unit, e.g. Dimension(12, "px").
func Dimension(n float64, unit string) Value {
	return Value{Kind: KindDimension, Num: n, Unit: strings.ToLower(unit)}
}

// Quoted creates a string value.
func Quoted(s string) Value {
	return Value{Kind: KindString, Text: s}
}

// RGBA creates a color value.
func RGBA(c color.RGBA) Value {
	return Value{Kind: KindColor, Color: c}
}

// Function creates an unevaluated function value.
func Function(name string, args ...Value) Value {
	return Value{Kind: KindFunction, Text: strings.ToLower(name), Items: args}
}

// List creates a list of values. The list does not copy its items.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindList, Items: items}
}

// Delim creates a separator or operator value.
func Delim(d string) Value {
	return Value{Kind: KindDelim, Text: d}
}

// IsNone is true for the absent value.
func (v Value) IsNone() bool {
	return v.Kind == KindNone
}

// IsKeyword checks for a keyword value of the given name.
func (v Value) IsKeyword(k string) bool {
	return v.Kind == KindKeyword && v.Text == k
}

// IsDelim checks for a delimiter value.
func (v Value) IsDelim(d string) bool {
	return v.Kind == KindDelim && v.Text == d
}

// IsFunction checks for a function value of the given name.
func (v Value) IsFunction(name string) bool {
	return v.Kind == KindFunction && v.Text == name
}

// IsCSSWide is true for the keywords every property accepts.
func (v Value) IsCSSWide() bool {
	if v.Kind != KindKeyword {
		return false
	}
	switch v.Text {
	case "inherit", "initial", "unset", "revert":
		return true
	}
	return false
}

// Unwrap returns the single element of a one-element list, and v otherwise.
// Non-function values thus keep their scalar typing after function
// resolution has wrapped them.
func (v Value) Unwrap() Value {
	if v.Kind == KindList && len(v.Items) == 1 {
		return v.Items[0]
	}
	return v
}

// Components returns the elements of a list, or v as a one-element slice.
func (v Value) Components() []Value {
	if v.Kind == KindList {
		return v.Items
	}
	if v.Kind == KindNone {
		return nil
	}
	return []Value{v}
}

// Flatten returns the elements of v with nested lists spliced in.
func (v Value) Flatten() []Value {
	if v.Kind != KindList {
		return v.Components()
	}
	flat := make([]Value, 0, len(v.Items))
	for _, item := range v.Items {
		if item.Kind == KindList {
			flat = append(flat, item.Flatten()...)
			continue
		}
		flat = append(flat, item)
	}
	return flat
}

// Equal compares two values structurally.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind || v.Text != other.Text || v.Num != other.Num ||
		v.Unit != other.Unit || v.Color != other.Color || len(v.Items) != len(other.Items) {
		return false
	}
	for i := range v.Items {
		if !v.Items[i].Equal(other.Items[i]) {
			return false
		}
	}
	return true
}

// String serializes a value to CSS text.
func (v Value) String() string {
	switch v.Kind {
	case KindNone:
		return ""
	case KindKeyword:
		return v.Text
	case KindNumber:
		return formatNum(v.Num)
	case KindPercentage:
		return formatNum(v.Num) + "%"
	case KindDimension:
		return formatNum(v.Num) + v.Unit
	case KindString:
		return strconv.Quote(v.Text)
	case KindColor:
		if v.Color.A == 0xff {
			return fmt.Sprintf("#%02x%02x%02x", v.Color.R, v.Color.G, v.Color.B)
		}
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", v.Color.R, v.Color.G, v.Color.B,
			formatNum(float64(v.Color.A)/255))
	case KindFunction:
		return v.Text + "(" + joinValues(v.Items) + ")"
	case KindList:
		return joinValues(v.Items)
	case KindDelim:
		return v.Text
	}
	return "?"
}

func joinValues(vals []Value) string {
	var b strings.Builder
	for i, item := range vals {
		if i > 0 && !item.IsDelim(",") {
			b.WriteByte(' ')
		}
		b.WriteString(item.String())
	}
	return b.String()
}

func formatNum(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
