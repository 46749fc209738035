package css

import (
	"fmt"
	"math"

	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	rel   float64 // percentage or factor of a relative unit
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage n
	| ViewRel n unit
	| FontRel n unit
	| ContentRel Min
	| ContentRel Max
*/

// Auto creates a CSS dimension of value 'auto'.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{rel: n, flags: dimenPercent}
}

var relativeUnits = map[string]uint32{
	"em": dimenEM, "ex": dimenEX, "ch": dimenCH, "rem": dimenREM,
	"vw": dimenVW, "vh": dimenVH, "vmin": dimenVMIN, "vmax": dimenVMAX,
}

// RelativeDimen creates a CSS dimension relative to a font or to the viewport,
// e.g. RelativeDimen(1.5, "em"). Unknown units result in an unset dimension.
func RelativeDimen(n float64, unit string) DimenT {
	if f, ok := relativeUnits[unit]; ok {
		return DimenT{rel: n, flags: f}
	}
	return DimenT{}
}

// ptPerUnit converts absolute CSS length units to printer's points.
var ptPerUnit = map[string]float64{
	"pt": 1,
	"px": 0.75,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
	"q":  72 / 101.6,
}

// AbsoluteLength converts a length in an absolute unit to a dimen.DU.
func AbsoluteLength(n float64, unit string) (dimen.DU, bool) {
	f, ok := ptPerUnit[unit]
	if !ok {
		return 0, false
	}
	return dimen.DU(math.Round(n * f * float64(dimen.PT))), true
}

// DimenFromValue interprets a CSS value as a dimension. Values which do not
// denote a dimension result in an unset DimenT.
func DimenFromValue(v style.Value) DimenT {
	v = v.Unwrap()
	switch v.Kind {
	case style.KindKeyword:
		switch v.Text {
		case "auto":
			return Auto()
		case "inherit":
			return Inherit()
		case "initial":
			return Initial()
		case "max-content":
			return DimenT{flags: DimenContentMax}
		case "min-content":
			return DimenT{flags: DimenContentMin}
		case "fit-content":
			return DimenT{flags: DimenContentFit}
		}
	case style.KindNumber:
		if v.Num == 0 {
			return JustDimen(0)
		}
	case style.KindPercentage:
		return Percentage(v.Num)
	case style.KindDimension:
		if du, ok := AbsoluteLength(v.Num, v.Unit); ok {
			return JustDimen(du)
		}
		return RelativeDimen(v.Num, v.Unit)
	}
	return DimenT{}
}

// DimenOf returns the actual value of a property as a dimension.
func DimenOf(props *style.Properties, key string) DimenT {
	v, ok := props.Actual(key)
	if !ok {
		return DimenT{}
	}
	return DimenFromValue(v)
}

// IsNone is true for an unset dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

func (d DimenT) String() string {
	switch {
	case d.flags == dimenNone:
		return "none"
	case d.flags&relativeMask == dimenPercent:
		return fmt.Sprintf("%g%%", d.rel)
	case d.flags&relativeMask > 0:
		for unit, f := range relativeUnits {
			if d.flags&relativeMask == f {
				return fmt.Sprintf("%g%s", d.rel, unit)
			}
		}
	case d.flags&contentMask > 0:
		return "content"
	}
	switch d.flags & kindMask {
	case dimenAbsolute:
		return fmt.Sprintf("%dsp", int64(d.d))
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	}
	return "?"
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&kindMask > 0) && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.rel
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Percent T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&relativeMask == dimenPercent:
		return patterns.Percent
	case m.dimen.flags&kindMask == dimenAuto:
		return patterns.Auto
	case m.dimen.flags&kindMask == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
