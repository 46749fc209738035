package cssom

import (
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
)

// Matcher decides whether a selector applies to a node of a document and
// reports the specificity of the selector. A Matcher must be a pure
// function of the document state at call time.
type Matcher interface {
	Match(doc *dom.Document, id dom.NodeID, sel Selector) (bool, style.Specificity)
}

// CascadiaMatcher matches selectors with package cascadia, operating on the
// HTML parse tree nodes backing the DOM. Compiled selectors are cached and
// the cache may be shared between documents.
type CascadiaMatcher struct {
	cache sync.Map // selector text -> compiled selector or nil
}

// NewCascadiaMatcher creates a selector matcher.
func NewCascadiaMatcher() *CascadiaMatcher {
	return &CascadiaMatcher{}
}

// Match is part of interface Matcher.
func (m *CascadiaMatcher) Match(doc *dom.Document, id dom.NodeID, sel Selector) (bool, style.Specificity) {
	if inlineID, ok := sel.Inline(); ok {
		if inlineID == id {
			return true, style.InlineSpecificity
		}
		return false, style.Specificity{}
	}
	n, ok := doc.NodeByID(id)
	if !ok || n.Kind() != dom.ElementNode || n.HTML() == nil {
		return false, style.Specificity{}
	}
	compiled := m.compile(sel.Text)
	if compiled == nil || !compiled.Match(n.HTML()) {
		return false, style.Specificity{}
	}
	s := compiled.Specificity()
	return true, style.Specificity{0, s[0], s[1], s[2]}
}

func (m *CascadiaMatcher) compile(text string) cascadia.Sel {
	if c, ok := m.cache.Load(text); ok {
		if c == nil {
			return nil
		}
		return c.(cascadia.Sel)
	}
	compiled, err := cascadia.Parse(text)
	if err != nil {
		tracer().Infof("cannot compile selector %q: %v", text, err)
		m.cache.Store(text, nil)
		return nil
	}
	m.cache.Store(text, compiled)
	return compiled
}

var _ Matcher = &CascadiaMatcher{}
