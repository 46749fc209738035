package style

import (
	"fmt"
	"strings"
)

// DeclarationProperty is a cascade candidate: the resolved value of one
// declaration for one property, stamped with everything needed to rank it
// against its competitors.
type DeclarationProperty struct {
	Value       Value
	Origin      Origin
	Important   bool
	Location    string // URL of the originating stylesheet
	Specificity Specificity
	Order       int // source order over all stylesheets of a pass
}

// Outranks is a strict total order over candidates: cascade layer first,
// then specificity, then source order.
func (d DeclarationProperty) Outranks(other DeclarationProperty) bool {
	l1, l2 := cascadeLayer(d.Origin, d.Important), cascadeLayer(other.Origin, other.Important)
	if l1 != l2 {
		return l1 > l2
	}
	if c := d.Specificity.Compare(other.Specificity); c != 0 {
		return c > 0
	}
	return d.Order > other.Order
}

func (d DeclarationProperty) String() string {
	imp := ""
	if d.Important {
		imp = " !important"
	}
	return fmt.Sprintf("%s%s [%s %s #%d]", d.Value, imp, d.Origin, d.Specificity, d.Order)
}

// Property is the per-node record for one CSS property.
//
// Declared holds the cascade candidates in insertion order; it is only ever
// appended to. Inherited is the value flowing in from the parent node and
// Actual the value this node finally uses. Both are set by the inheritance
// pass.
type Property struct {
	Name      string
	Declared  []DeclarationProperty
	Inherited Value
	Actual    Value
}

// NewProperty creates an empty property record.
func NewProperty(name string) *Property {
	return &Property{Name: name}
}

// Winner returns the highest ranking declared candidate, if any.
func (p *Property) Winner() (DeclarationProperty, bool) {
	if len(p.Declared) == 0 {
		return DeclarationProperty{}, false
	}
	win := p.Declared[0]
	for _, d := range p.Declared[1:] {
		if d.Outranks(win) {
			win = d
		}
	}
	return win, true
}

// CascadedValue returns the value of the winning candidate, or None.
func (p *Property) CascadedValue() Value {
	if win, ok := p.Winner(); ok {
		return win.Value
	}
	return None
}

// ComputeValue sets the actual value from the winning candidate and the
// inherited value. inheritable tells if the property is inherited by
// default, initial is its initial value.
//
// CSS-wide keywords are resolved here: 'inherit' takes the inherited value,
// 'initial' the initial value, 'unset' and 'revert' act as 'inherit' for
// inheritable properties and as 'initial' otherwise.
func (p *Property) ComputeValue(inheritable bool, initial Value) {
	fromParent := func() Value {
		if !p.Inherited.IsNone() {
			return p.Inherited
		}
		return initial
	}
	win, ok := p.Winner()
	if !ok {
		if inheritable {
			p.Actual = fromParent()
		} else {
			p.Actual = initial
		}
		return
	}
	v := win.Value
	switch {
	case v.IsKeyword("inherit"):
		p.Actual = fromParent()
	case v.IsKeyword("initial"):
		p.Actual = initial
	case v.IsKeyword("unset"), v.IsKeyword("revert"):
		if inheritable {
			p.Actual = fromParent()
		} else {
			p.Actual = initial
		}
	default:
		p.Actual = v
	}
	tracer().Debugf("computed %s = %s from %d candidate(s)", p.Name, p.Actual, len(p.Declared))
}

// --- Property map ----------------------------------------------------------

// Properties maps property names to property records of a single node.
// Records are created lazily and never deleted. Iteration follows insertion
// order. nil is a legal, empty map for reading.
type Properties struct {
	props map[string]*Property
	names []string
}

// NewProperties returns a new empty property map.
func NewProperties() *Properties {
	return &Properties{props: make(map[string]*Property)}
}

// Len returns the number of property records.
func (ps *Properties) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.names)
}

// Get returns the record for a property, if present.
func (ps *Properties) Get(name string) (*Property, bool) {
	if ps == nil {
		return nil, false
	}
	p, ok := ps.props[name]
	return p, ok
}

// Ensure returns the record for a property, creating it if necessary.
func (ps *Properties) Ensure(name string) *Property {
	if p, ok := ps.props[name]; ok {
		return p
	}
	p := NewProperty(name)
	ps.props[name] = p
	ps.names = append(ps.names, name)
	return p
}

// AddDeclared appends a cascade candidate to a property.
func (ps *Properties) AddDeclared(name string, decl DeclarationProperty) {
	p := ps.Ensure(name)
	p.Declared = append(p.Declared, decl)
}

// InsertInherited seeds the inherited value of a property.
func (ps *Properties) InsertInherited(name string, v Value) {
	ps.Ensure(name).Inherited = v
}

// Names returns the property names in insertion order.
func (ps *Properties) Names() []string {
	if ps == nil {
		return nil
	}
	names := make([]string, len(ps.names))
	copy(names, ps.names)
	return names
}

// Each calls f for every property record, in insertion order.
func (ps *Properties) Each(f func(name string, p *Property)) {
	if ps == nil {
		return
	}
	for _, name := range ps.names {
		f(name, ps.props[name])
	}
}

// Actual returns the actual value of a property, if it has been computed.
func (ps *Properties) Actual(name string) (Value, bool) {
	p, ok := ps.Get(name)
	if !ok || p.Actual.IsNone() {
		return None, false
	}
	return p.Actual, true
}

// Stringer for property maps; used for debugging.
func (ps *Properties) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	ps.Each(func(name string, p *Property) {
		fmt.Fprintf(&b, "  %s = %s\n", name, p.Actual)
	})
	b.WriteString("}")
	return b.String()
}
