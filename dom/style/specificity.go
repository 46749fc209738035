package style

import "fmt"

// Specificity is the weight of a selector, with the convention
// Specificity = [inline, A, B, C]: inline style attributes, ID selectors,
// class/attribute/pseudo-class selectors and type selectors.
// See https://www.w3.org/TR/selectors/#specificity-rules
type Specificity [4]int

// InlineSpecificity is the specificity of declarations from a style attribute.
var InlineSpecificity = Specificity{1, 0, 0, 0}

// Compare returns -1, 0 or +1, comparing components left to right.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if s[i] < other[i] {
			return -1
		}
		if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Less returns true if s < other (strictly).
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

func (s Specificity) String() string {
	if s[0] > 0 {
		return fmt.Sprintf("(inline,%d,%d,%d)", s[1], s[2], s[3])
	}
	return fmt.Sprintf("(%d,%d,%d)", s[1], s[2], s[3])
}

// Origin is the provenance tier of a stylesheet.
type Origin uint8

// Stylesheet origins.
const (
	UserAgentOrigin Origin = iota
	UserOrigin
	AuthorOrigin
)

func (o Origin) String() string {
	switch o {
	case UserAgentOrigin:
		return "user-agent"
	case UserOrigin:
		return "user"
	case AuthorOrigin:
		return "author"
	}
	return "unknown-origin"
}

// cascadeLayer returns the precedence tier of a declaration.
// Normal declarations rank user-agent < user < author; important
// declarations rank above all of them, in inverted origin order.
func cascadeLayer(origin Origin, important bool) int {
	if important {
		switch origin {
		case AuthorOrigin:
			return 3
		case UserOrigin:
			return 4
		case UserAgentOrigin:
			return 5
		}
		return 3
	}
	switch origin {
	case UserOrigin:
		return 1
	case AuthorOrigin:
		return 2
	}
	return 0
}
