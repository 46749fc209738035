package cssom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/stylecore/dom"
	"github.com/npillmayer/stylecore/dom/style"
)

// StyleSheet is a parsed stylesheet.
type StyleSheet struct {
	Origin style.Origin
	URL    string // location of the stylesheet, used for diagnostics
	Rules  []*Rule
}

// NewStyleSheet creates an empty stylesheet.
func NewStyleSheet(origin style.Origin, url string) *StyleSheet {
	return &StyleSheet{Origin: origin, URL: url}
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	if other == nil {
		return
	}
	sheet.Rules = append(sheet.Rules, other.Rules...)
}

func (sheet *StyleSheet) String() string {
	return fmt.Sprintf("stylesheet(%s, %s, %d rules)", sheet.Origin, sheet.URL, len(sheet.Rules))
}

// Rule is the type stylesheets consists of. A rule with several selectors
// applies once per matching selector.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

func (r *Rule) String() string {
	sels := make([]string, len(r.Selectors))
	for i, s := range r.Selectors {
		sels[i] = s.String()
	}
	return fmt.Sprintf("%s { %d declarations }", strings.Join(sels, ", "), len(r.Declarations))
}

// Selector is a single complex selector of a rule, in textual form.
// Inline selectors stand for the style attribute of a single element.
type Selector struct {
	Text   string
	inline bool
	node   dom.NodeID
}

// NewSelector wraps selector text.
func NewSelector(text string) Selector {
	return Selector{Text: strings.TrimSpace(text)}
}

// InlineSelector returns a selector matching exactly the given node.
func InlineSelector(id dom.NodeID) Selector {
	return Selector{Text: fmt.Sprintf("[style@%d]", id), inline: true, node: id}
}

// Inline returns the element an inline selector is bound to.
func (s Selector) Inline() (dom.NodeID, bool) {
	return s.node, s.inline
}

func (s Selector) String() string {
	return s.Text
}

// Declaration is a (property, value, important-flag) triple as authored.
type Declaration struct {
	Property  string
	Value     style.Value
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value.String() + " !important"
	}
	return d.Property + ": " + d.Value.String()
}
