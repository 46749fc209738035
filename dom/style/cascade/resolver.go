package cascade

import (
	"strconv"
	"strings"

	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
)

// functionKind is the closed set of functions the resolver evaluates.
type functionKind uint8

const (
	fnUnknown functionKind = iota
	fnCalc
	fnAttr
	fnVar
)

func kindOfFunction(name string) functionKind {
	switch name {
	case "calc":
		return fnCalc
	case "attr":
		return fnAttr
	case "var":
		return fnVar
	}
	return fnUnknown
}

// maxVarDepth bounds the resolution of custom properties referencing each
// other.
const maxVarDepth = 16

// ResolveFunctions resolves the dynamic functions calc(), attr() and var()
// of a value in the context of a node. Lists are resolved element-wise,
// values which are not functions are returned unchanged.
//
// The result of resolving a function is always a list, possibly empty.
// Functions other than the three above are not evaluated; they are
// returned as a one-element list holding the function, with var() and
// attr() in their arguments resolved. A missing attribute or undefined
// custom property without a fallback yields an empty list. A custom property
// resolving to nothing, e.g. by referencing itself, counts as undefined.
//
// ResolveFunctions does not modify the document.
func ResolveFunctions(v style.Value, doc *dom.Document, id dom.NodeID) style.Value {
	r := resolver{doc: doc, id: id}
	return r.resolve(v)
}

type resolver struct {
	doc   *dom.Document
	id    dom.NodeID
	depth int
}

func (r *resolver) resolve(v style.Value) style.Value {
	switch v.Kind {
	case style.KindList:
		items := make([]style.Value, len(v.Items))
		for i, item := range v.Items {
			items[i] = r.resolve(item)
		}
		return style.List(items...)
	case style.KindFunction:
		return r.function(v)
	}
	return v
}

func (r *resolver) function(f style.Value) style.Value {
	switch kindOfFunction(f.Text) {
	case fnCalc:
		return r.calc(f)
	case fnAttr:
		return r.attr(f)
	case fnVar:
		return r.variable(f)
	}
	g := f
	g.Items = r.arguments(f.Items)
	return style.List(g)
}

// arguments resolves function arguments. Lists resulting from nested
// functions are spliced into the argument sequence.
func (r *resolver) arguments(args []style.Value) []style.Value {
	resolved := make([]style.Value, 0, len(args))
	for _, arg := range args {
		v := r.resolve(arg)
		if arg.Kind != style.KindList && v.Kind == style.KindList {
			resolved = append(resolved, v.Flatten()...)
			continue
		}
		resolved = append(resolved, v)
	}
	return resolved
}

// --- attr() ----------------------------------------------------------------

// attr resolves attr(name [type] [, fallback]). Type is one of string
// (default), ident, number or a dimension unit.
func (r *resolver) attr(f style.Value) style.Value {
	args, fallback := splitFallback(r.arguments(f.Items))
	if len(args) == 0 || args[0].Kind != style.KindKeyword {
		tracer().Infof("malformed %s", f)
		return r.fallback(fallback)
	}
	typ := "string"
	if len(args) > 1 {
		if args[1].Kind != style.KindKeyword && !args[1].IsDelim("%") {
			return r.fallback(fallback)
		}
		typ = args[1].Text
	}
	n, ok := r.doc.NodeByID(r.id)
	if !ok {
		return r.fallback(fallback)
	}
	raw, ok := n.Attr(args[0].Text)
	if !ok {
		return r.fallback(fallback)
	}
	if v, ok := convertAttr(strings.TrimSpace(raw), typ); ok {
		return style.List(v)
	}
	tracer().Infof("attribute %s=%q is not of type %s", args[0].Text, raw, typ)
	return r.fallback(fallback)
}

func convertAttr(raw, typ string) (style.Value, bool) {
	switch typ {
	case "string":
		return style.Quoted(raw), true
	case "ident":
		if raw == "" || strings.ContainsAny(raw, " \t\n") {
			return style.None, false
		}
		return style.Keyword(raw), true
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return style.None, false
	}
	switch typ {
	case "number", "integer":
		return style.Number(n), true
	case "%", "percentage":
		return style.Percentage(n), true
	}
	return style.Dimension(n, typ), true
}

// --- var() -----------------------------------------------------------------

// variable resolves var(--name [, fallback]).
func (r *resolver) variable(f style.Value) style.Value {
	args, fallback := splitFallback(f.Items)
	if len(args) != 1 || args[0].Kind != style.KindKeyword || !strings.HasPrefix(args[0].Text, "--") {
		tracer().Infof("malformed %s", f)
		return r.fallback(fallback)
	}
	if r.depth >= maxVarDepth {
		tracer().Infof("custom property %s nested too deep, possibly cyclic", args[0].Text)
		return r.fallback(fallback)
	}
	v, ok := r.doc.CustomProperty(r.id, args[0].Text)
	if !ok {
		return r.fallback(fallback)
	}
	r.depth++
	defer func() { r.depth-- }()
	resolved := r.resolve(v).Flatten()
	if len(resolved) == 0 {
		return r.fallback(fallback)
	}
	return style.List(resolved...)
}

// splitFallback splits arguments at the first comma.
func splitFallback(args []style.Value) ([]style.Value, []style.Value) {
	for i, a := range args {
		if a.IsDelim(",") {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func (r *resolver) fallback(fb []style.Value) style.Value {
	if len(fb) == 0 {
		return style.List()
	}
	resolved := r.resolve(style.List(fb...))
	return style.List(resolved.Flatten()...)
}
