package vector

import (
	"fmt"
	"strings"
)

const defaultBits uint32 = 5 // will produce nodes with degree 2 ^ 5 = 32

type props struct {
	bits  uint32 // number of bits to use per level
	shift uint32 // we do not store h(v), but rather bits*h(v)
}

func (p props) init() props {
	if p.bits == 0 {
		p.bits = defaultBits
	}
	if p.shift == 0 {
		p.shift = p.bits
	}
	return p
}

func (p props) degree() uint32 {
	return 1 << p.bits
}

func (p props) mask() uint32 {
	return p.degree() - 1
}

// vnode is a node of the trie a vector is made of. Inner nodes have
// children, leaf nodes have leafs.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](k uint32) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], int(k)),
	}
}

func newLeaf[T any](tail []T) *vnode[T] {
	l := make([]T, len(tail))
	copy(l, tail)
	return &vnode[T]{leafs: l}
}

func (node *vnode[T]) clone() *vnode[T] {
	n := &vnode[T]{}
	if node.leafs != nil {
		n.leafs = make([]T, len(node.leafs))
		copy(n.leafs, node.leafs)
	}
	if node.children != nil {
		n.children = make([]*vnode[T], len(node.children))
		copy(n.children, node.children)
	}
	return n
}

func cloneTail[T any](tail []T, l int) []T {
	newTail := make([]T, l)
	copy(newTail, tail)
	return newTail
}

// newPath creates a chain of inner nodes of height level/bits above a leaf.
func newPath[T any](level, bits, k uint32, leaf *vnode[T]) *vnode[T] {
	if level == 0 {
		return leaf
	}
	top := emptyNode[T](k)
	top.children[0] = newPath(level-bits, bits, k, leaf)
	return top
}

func (node vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leafs != nil {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// ---------------------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.vector: "+msg, msgargs...)
		panic(msg)
	}
}
