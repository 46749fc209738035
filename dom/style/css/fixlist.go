package css

import (
	"github.com/npillmayer/stylecore/dom/style"
)

// maxNestingDepth bounds the expansion of shorthands into shorthands.
// The definition table is acyclic by construction; the bound keeps a
// defective table from hanging a cascade pass.
const maxNestingDepth = 8

// FixList collects the longhand writes implied by shorthand declarations
// during the cascade pass of a single node. Writes are not performed
// immediately, but in three steps: validation stages an expansion, the
// caller commits it together with the cascade metadata of its declaration,
// and after all declarations of the node have been processed, the list is
// resolved (nested shorthands expanded) and applied to the node's
// properties.
//
// A FixList must not be shared between nodes or goroutines.
type FixList struct {
	pending []Expansion
	entries []fixEntry
}

type fixEntry struct {
	Expansion
	candidate style.DeclarationProperty
	depth     int
}

// NewFixList creates an empty fix list.
func NewFixList() *FixList {
	return &FixList{}
}

func (fl *FixList) stage(exp ...Expansion) {
	if fl != nil {
		fl.pending = append(fl.pending, exp...)
	}
}

func (fl *FixList) discard() {
	if fl != nil {
		fl.pending = fl.pending[:0]
	}
}

// Pending returns the expansion staged by the last validation.
func (fl *FixList) Pending() []Expansion {
	return fl.pending
}

// Commit turns the staged expansion into obligations. Every longhand write
// will carry the origin, importance, specificity and source order of
// candidate. Commit returns the number of obligations added.
func (fl *FixList) Commit(candidate style.DeclarationProperty) int {
	n := len(fl.pending)
	for _, exp := range fl.pending {
		fl.entries = append(fl.entries, fixEntry{Expansion: exp, candidate: candidate})
	}
	fl.pending = fl.pending[:0]
	return n
}

// Len returns the number of obligations.
func (fl *FixList) Len() int {
	return len(fl.entries)
}

// Obligations returns the longhand writes in the order they will be applied.
func (fl *FixList) Obligations() []Expansion {
	exps := make([]Expansion, len(fl.entries))
	for i, e := range fl.entries {
		exps[i] = e.Expansion
	}
	return exps
}

// ResolveNested replaces obligations for shorthand properties by the
// obligations of their expansion, until only longhands are left. Order is
// preserved: an expansion takes the place of its shorthand. Obligations
// nested deeper than maxNestingDepth, as well as those whose value does not
// fit the nested shorthand, are dropped.
//
// Resolving is idempotent.
func (fl *FixList) ResolveNested(table *Table) {
	for changed := true; changed; {
		changed = false
		next := make([]fixEntry, 0, len(fl.entries))
		for _, e := range fl.entries {
			def, ok := table.Find(e.Property)
			if !ok || !def.IsShorthand() {
				next = append(next, e)
				continue
			}
			changed = true
			if e.depth >= maxNestingDepth {
				tracer().Errorf("shorthand %s nested deeper than %d levels, dropped; definition table is defective",
					e.Property, maxNestingDepth)
				continue
			}
			exps, ok := def.expand(e.Value.Components())
			if !ok {
				tracer().Infof("value %s does not fit shorthand %s, dropped", e.Value, e.Property)
				continue
			}
			for _, exp := range exps {
				next = append(next, fixEntry{Expansion: exp, candidate: e.candidate, depth: e.depth + 1})
			}
		}
		fl.entries = next
	}
}

// Apply writes all obligations as cascade candidates into props, and
// clears the list.
func (fl *FixList) Apply(props *style.Properties) {
	for _, e := range fl.entries {
		candidate := e.candidate
		candidate.Value = e.Value
		props.AddDeclared(e.Property, candidate)
	}
	tracer().Debugf("applied %d longhand writes", len(fl.entries))
	fl.entries = nil
}
