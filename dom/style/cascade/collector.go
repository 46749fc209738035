package cascade

import (
	"strings"

	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
	"github.com/npillmayer/stylecore/dom/style/css"
	"github.com/npillmayer/stylecore/dom/style/cssom"
)

// Cascade collects style declarations for document nodes.
//
// A Cascade holds no per-document state and may be used for any number of
// documents, but not concurrently for the same document.
type Cascade struct {
	table   *css.Table
	matcher cssom.Matcher
}

// New creates a cascade using a selector matcher. If matcher is nil, a
// cascadia based matcher is used.
func New(matcher cssom.Matcher) *Cascade {
	if matcher == nil {
		matcher = cssom.NewCascadiaMatcher()
	}
	return &Cascade{table: css.Definitions(), matcher: matcher}
}

// Definitions returns the property definition table in use.
func (c *Cascade) Definitions() *css.Table {
	return c.table
}

// applicable is a declaration of a matching rule, stamped with the cascade
// metadata of the selector it matched through.
type applicable struct {
	decl      cssom.Declaration
	candidate style.DeclarationProperty
}

// ComputeProperties collects the cascade candidates of all stylesheets for
// a node. Stylesheets are visited in the order given, rules and selectors
// in source order.
//
// ComputeProperties returns false for nodes which will never be rendered,
// and for node ids not present in doc. Unknown properties and values not
// fitting the grammar of their property are traced and skipped.
//
// Custom properties are bound in doc as a side effect. var() looks them up
// on the node and its ancestors, therefore nodes have to be computed in
// pre-order, i.e. a node after all of its ancestors (styledtree.Build does
// this).
func (c *Cascade) ComputeProperties(doc *dom.Document, id dom.NodeID, sheets []*cssom.StyleSheet) (*style.Properties, bool) {
	n, ok := doc.NodeByID(id)
	if !ok || dom.NodeIsUnrenderable(n) {
		return nil, false
	}
	decls := c.collect(doc, id, sheets)
	c.defineCustomProperties(doc, id, decls)
	props := style.NewProperties()
	fl := css.NewFixList()
	for _, a := range decls {
		def, ok := c.table.Find(a.decl.Property)
		if !ok {
			tracer().Infof("unknown property %s in %s, skipped", a.decl.Property, a.candidate.Location)
			continue
		}
		resolved := style.List(ResolveFunctions(a.decl.Value, doc, id).Flatten()...).Unwrap()
		if !def.MatchesAndShorthands(resolved.Components(), fl) {
			tracer().Infof("value %q does not fit property %s in %s, skipped",
				resolved, a.decl.Property, a.candidate.Location)
			continue
		}
		a.candidate.Value = resolved
		fl.Commit(a.candidate)
		props.AddDeclared(a.decl.Property, a.candidate)
	}
	fl.ResolveNested(c.table)
	fl.Apply(props)
	tracer().Debugf("node %s: %d properties", n, props.Len())
	return props, true
}

// collect returns the declarations of all rules matching a node, in
// source order. The source order counter runs over all stylesheets.
func (c *Cascade) collect(doc *dom.Document, id dom.NodeID, sheets []*cssom.StyleSheet) []applicable {
	var decls []applicable
	order := 0
	for _, sheet := range sheets {
		if sheet.Empty() {
			continue
		}
		for _, rule := range sheet.Rules {
			for _, sel := range rule.Selectors {
				matched, spec := c.matcher.Match(doc, id, sel)
				if !matched {
					continue
				}
				if _, inline := sel.Inline(); inline {
					spec = style.InlineSpecificity
				}
				for _, d := range rule.Declarations {
					order++
					decls = append(decls, applicable{
						decl: d,
						candidate: style.DeclarationProperty{
							Origin:      sheet.Origin,
							Important:   d.Important,
							Location:    sheet.URL,
							Specificity: spec,
							Order:       order,
						},
					})
				}
			}
		}
	}
	return decls
}

// defineCustomProperties binds the computed value of every custom property
// declared for a node in the document environment. References to other
// custom properties are resolved at the node declaring them. This happens before any
// other declaration is resolved, so var() sees custom properties of the
// node independent of declaration order.
func (c *Cascade) defineCustomProperties(doc *dom.Document, id dom.NodeID, decls []applicable) {
	winners := make(map[string]applicable)
	var names []string
	for _, a := range decls {
		if !strings.HasPrefix(a.decl.Property, "--") {
			continue
		}
		w, ok := winners[a.decl.Property]
		if !ok {
			names = append(names, a.decl.Property)
		}
		if !ok || a.candidate.Outranks(w.candidate) {
			winners[a.decl.Property] = a
		}
	}
	for _, name := range names {
		doc.DefineCustomProperty(id, name, winners[name].decl.Value)
	}
	// Descendants inherit the values computed here, not the raw references.
	computed := make([]style.Value, len(names))
	for i, name := range names {
		computed[i] = style.List(ResolveFunctions(winners[name].decl.Value, doc, id).Flatten()...)
	}
	for i, name := range names {
		doc.DefineCustomProperty(id, name, computed[i])
	}
}
