package cascade

import (
	"errors"

	"github.com/npillmayer/stylecore/dom/style"
)

// pxPerUnit converts absolute lengths to px, for mixing units in calc().
var pxPerUnit = map[string]float64{
	"px": 1,
	"pt": 4.0 / 3.0,
	"pc": 16,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
	"q":  96 / 101.6,
}

var (
	errCalcSyntax      = errors.New("calc: syntax error")
	errCalcUnits       = errors.New("calc: incompatible units")
	errCalcDivByZero   = errors.New("calc: division by zero")
	errCalcNonNumeric  = errors.New("calc: non-numeric operand")
	errCalcNeedsNumber = errors.New("calc: operation needs a plain number")
)

// calc evaluates calc() over numbers, percentages and dimensions. var() and
// attr() operands are resolved first. If the expression cannot be
// evaluated, e.g. because it mixes percentages and lengths, the function is
// kept unevaluated.
func (r *resolver) calc(f style.Value) style.Value {
	p := calcParser{ops: r.arguments(f.Items), r: r}
	result, err := p.expression()
	if err == nil && p.pos < len(p.ops) {
		err = errCalcSyntax
	}
	if err != nil {
		tracer().Debugf("%s unresolved: %v", f, err)
		g := f
		g.Items = p.ops
		return style.List(g)
	}
	return style.List(result)
}

type calcParser struct {
	ops []style.Value
	pos int
	r   *resolver
}

func (p *calcParser) peekOperator(ops ...string) (string, bool) {
	if p.pos >= len(p.ops) {
		return "", false
	}
	for _, op := range ops {
		if p.ops[p.pos].IsDelim(op) {
			return op, true
		}
	}
	return "", false
}

func (p *calcParser) expression() (style.Value, error) {
	acc, err := p.term()
	if err != nil {
		return style.None, err
	}
	for {
		op, ok := p.peekOperator("+", "-")
		if !ok {
			return acc, nil
		}
		p.pos++
		rhs, err := p.term()
		if err != nil {
			return style.None, err
		}
		if acc, err = add(acc, rhs, op == "-"); err != nil {
			return style.None, err
		}
	}
}

func (p *calcParser) term() (style.Value, error) {
	acc, err := p.factor()
	if err != nil {
		return style.None, err
	}
	for {
		op, ok := p.peekOperator("*", "/")
		if !ok {
			return acc, nil
		}
		p.pos++
		rhs, err := p.factor()
		if err != nil {
			return style.None, err
		}
		if op == "*" {
			acc, err = multiply(acc, rhs)
		} else {
			acc, err = divide(acc, rhs)
		}
		if err != nil {
			return style.None, err
		}
	}
}

func (p *calcParser) factor() (style.Value, error) {
	if p.pos >= len(p.ops) {
		return style.None, errCalcSyntax
	}
	v := p.ops[p.pos]
	p.pos++
	switch v.Kind {
	case style.KindNumber, style.KindPercentage, style.KindDimension:
		return v, nil
	case style.KindFunction:
		if v.Text != "" && v.Text != "calc" {
			return style.None, errCalcNonNumeric
		}
		nested := calcParser{ops: p.r.arguments(v.Items), r: p.r}
		result, err := nested.expression()
		if err == nil && nested.pos < len(nested.ops) {
			err = errCalcSyntax
		}
		return result, err
	}
	return style.None, errCalcNonNumeric
}

func add(a, b style.Value, subtract bool) (style.Value, error) {
	if subtract {
		b.Num = -b.Num
	}
	if a.Kind != b.Kind {
		return style.None, errCalcUnits
	}
	if a.Kind != style.KindDimension || a.Unit == b.Unit {
		a.Num += b.Num
		return a, nil
	}
	fa, oka := pxPerUnit[a.Unit]
	fb, okb := pxPerUnit[b.Unit]
	if !oka || !okb {
		return style.None, errCalcUnits
	}
	return style.Dimension(a.Num*fa+b.Num*fb, "px"), nil
}

func multiply(a, b style.Value) (style.Value, error) {
	switch {
	case b.Kind == style.KindNumber:
		a.Num *= b.Num
		return a, nil
	case a.Kind == style.KindNumber:
		b.Num *= a.Num
		return b, nil
	}
	return style.None, errCalcNeedsNumber
}

func divide(a, b style.Value) (style.Value, error) {
	if b.Kind != style.KindNumber {
		return style.None, errCalcNeedsNumber
	}
	if b.Num == 0 {
		return style.None, errCalcDivByZero
	}
	a.Num /= b.Num
	return a, nil
}
