package vector

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestVectorConstructor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.vector")
	defer teardown()
	//
	v := Immutable[int](BitsPerLevel(2))
	if v.props.init().mask() != 0x03 {
		t.Errorf("expected mask to be 0011, is %x", v.props.init().mask())
	}
	var zero Vector[string]
	if zero.Len() != 0 {
		t.Errorf("expected zero vector to be empty")
	}
	if _, ok := zero.Last(); ok {
		t.Errorf("expected zero vector to have no last element")
	}
}

func TestVectorPush(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.vector")
	defer teardown()
	//
	for bits := 1; bits <= 5; bits++ {
		v := Immutable[int](BitsPerLevel(bits))
		for i := 0; i < 300; i++ {
			v = v.Push(i)
			if v.Len() != i+1 {
				t.Fatalf("bits=%d: expected length %d, is %d", bits, i+1, v.Len())
			}
		}
		for i := 0; i < 300; i++ {
			if x := v.Get(i); x != i {
				t.Log(printVec(v))
				t.Fatalf("bits=%d: expected v[%d] = %d, is %d", bits, i, i, x)
			}
		}
		if last, _ := v.Last(); last != 299 {
			t.Errorf("bits=%d: expected last element to be 299, is %d", bits, last)
		}
	}
}

func TestVectorPersistence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.vector")
	defer teardown()
	//
	v := Immutable[int](BitsPerLevel(1))
	for i := 0; i < 20; i++ {
		v = v.Push(i)
	}
	w := v.Set(3, 333).Set(19, 1919)
	u := v.Push(20)
	for i := 0; i < 20; i++ {
		if v.Get(i) != i {
			t.Errorf("original modified at %d: %d", i, v.Get(i))
		}
	}
	if w.Get(3) != 333 || w.Get(19) != 1919 || w.Get(4) != 4 {
		t.Errorf("unexpected copy %v", w.Slice())
	}
	if u.Len() != 21 || v.Len() != 20 {
		t.Errorf("expected lengths 21 and 20, are %d and %d", u.Len(), v.Len())
	}
	s := Of("a", "b", "c").Slice()
	if len(s) != 3 || s[2] != "c" {
		t.Errorf("expected [a b c], have %v", s)
	}
}

func TestVectorOutOfBounds(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected index out of bounds to panic")
		}
	}()
	Of(1, 2).Get(2)
}

// --- Print vector tree -----------------------------------------------------

func printVec[T any](v Vector[T]) string {
	header := fmt.Sprintf("\nVector(length=%d, shift=%d, bits=%d)\n", v.length, v.shift, v.bits)
	tail := fmt.Sprintf("       tail=%v\n", v.tail)
	printer := tp.New()
	if v.root != nil {
		printNode(printer, v.root)
	}
	return header + tail + printer.String()
}

func printNode[T any](printer tp.Tree, node *vnode[T]) {
	if node == nil {
		return
	}
	if node.leafs != nil {
		printer.AddNode(node.String())
		return
	}
	branch := printer.AddBranch(node.String())
	for _, ch := range node.children {
		printNode(branch, ch)
	}
}
