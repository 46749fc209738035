package dom

import (
	"errors"
	"fmt"
)

// ErrQueryUninitialized is returned for a query without a search type.
var ErrQueryUninitialized = errors.New("query predicate is uninitialized")

// SearchType tells a query whether to stop at the first match.
type SearchType uint8

// Search types. The zero value is Uninitialized, which makes a query
// unusable.
const (
	Uninitialized SearchType = iota
	FindFirst
	FindAll
)

type conditionKind uint8

const (
	equalsTag conditionKind = iota
	equalsID
	containsClass
	containsAttribute
	containsChildTag
	hasParentTag
)

// Condition is a single criterion of a query. Conditions are created with
// EqualsTag, EqualsID, ContainsClass, ContainsAttribute, ContainsChildTag
// and HasParentTag.
type Condition struct {
	kind conditionKind
	arg  string
}

// EqualsTag matches elements with a given tag name.
func EqualsTag(tag string) Condition { return Condition{equalsTag, tag} }

// EqualsID matches the element with a given 'id' attribute.
func EqualsID(id string) Condition { return Condition{equalsID, id} }

// ContainsClass matches elements with a class in their class list.
func ContainsClass(class string) Condition { return Condition{containsClass, class} }

// ContainsAttribute matches elements carrying an attribute.
func ContainsAttribute(key string) Condition { return Condition{containsAttribute, key} }

// ContainsChildTag matches nodes with a child element of a given tag.
func ContainsChildTag(tag string) Condition { return Condition{containsChildTag, tag} }

// HasParentTag matches nodes whose parent is an element of a given tag.
func HasParentTag(tag string) Condition { return Condition{hasParentTag, tag} }

func (c Condition) String() string {
	names := [...]string{"EqualsTag", "EqualsID", "ContainsClass", "ContainsAttribute",
		"ContainsChildTag", "HasParentTag"}
	return fmt.Sprintf("%s(%s)", names[c.kind], c.arg)
}

// Query selects nodes of a document which fulfill all conditions.
type Query struct {
	SearchType SearchType
	Conditions []Condition
}

// NewQuery creates a query from a search type and a set of conditions.
func NewQuery(st SearchType, conditions ...Condition) Query {
	return Query{SearchType: st, Conditions: conditions}
}

// Query performs a query against the document. Matching node ids are
// returned in document order (preorder, depth first). Querying with an
// uninitialized search type is an error.
func (doc *Document) Query(q Query) ([]NodeID, error) {
	if q.SearchType == Uninitialized {
		return nil, ErrQueryUninitialized
	}
	var found []NodeID
	it := doc.Iterate(doc.Root())
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		if !doc.matchesAll(id, q.Conditions) {
			continue
		}
		found = append(found, id)
		if q.SearchType == FindFirst {
			break
		}
	}
	tracer().Debugf("query %v found %d node(s)", q.Conditions, len(found))
	return found, nil
}

func (doc *Document) matchesAll(id NodeID, conditions []Condition) bool {
	for _, c := range conditions {
		if !doc.matches(id, c) {
			return false
		}
	}
	return true
}

func (doc *Document) matches(id NodeID, c Condition) bool {
	n, ok := doc.NodeByID(id)
	if !ok {
		return false
	}
	switch c.kind {
	case equalsTag:
		return n.kind == ElementNode && n.name == c.arg
	case equalsID:
		return n.kind == ElementNode && n.HasAttr("id") && n.ElementID() == c.arg
	case containsClass:
		return n.kind == ElementNode && n.HasClass(c.arg)
	case containsAttribute:
		return n.kind == ElementNode && n.HasAttr(c.arg)
	case containsChildTag:
		for _, ch := range n.children {
			if child, ok := doc.NodeByID(ch); ok && child.Tag() == c.arg {
				return true
			}
		}
		return false
	case hasParentTag:
		p, ok := doc.NodeByID(n.parent)
		return ok && p.Tag() == c.arg
	}
	return false
}
