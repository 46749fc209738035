package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTestTree() *Node[string] {
	root := NewNode("root")
	a, b := NewNode("a"), NewNode("b")
	root.AddChild(a).AddChild(b)
	a.AddChild(NewNode("a1")).AddChild(NewNode("a2"))
	b.AddChild(NewNode("b1"))
	return root
}

func TestTopDownOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylecore.tree")
	defer teardown()
	//
	root := buildTestTree()
	var order []string
	err := TopDown(root, func(n *Node[string], depth int) error {
		order = append(order, n.Payload)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"root", "a", "a1", "a2", "b", "b1"}
	if len(order) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, order)
			break
		}
	}
}

func TestTopDownSkip(t *testing.T) {
	root := buildTestTree()
	count := 0
	_ = TopDown(root, func(n *Node[string], depth int) error {
		count++
		if n.Payload == "a" {
			return ErrSkipChildren
		}
		return nil
	})
	if count != 4 {
		t.Errorf("expected 4 nodes to be visited, got %d", count)
	}
	if err := TopDown[string](nil, nil); err != ErrEmptyTree {
		t.Errorf("expected ErrEmptyTree, got %v", err)
	}
}

func TestFindAndIsolate(t *testing.T) {
	root := buildTestTree()
	leafs := FindAll(root, NodeIsLeaf[string]())
	if len(leafs) != 3 {
		t.Errorf("expected 3 leafs, got %d", len(leafs))
	}
	a1 := leafs[0]
	if a1.Depth() != 2 {
		t.Errorf("expected depth of a1 to be 2, is %d", a1.Depth())
	}
	anc := AncestorWith(a1, func(n *Node[string]) bool { return n.Payload == "root" })
	if anc != root {
		t.Errorf("expected to find root as ancestor of a1")
	}
	a := a1.Parent()
	a1.Isolate()
	if a.ChildCount() != 2 || len(a.Children(true)) != 1 {
		t.Errorf("expected isolated child to leave a hole, children = %v", a.Children(false))
	}
	if _, ok := a.Child(0); ok {
		t.Errorf("expected child #0 to be gone")
	}
	a.InsertChildAt(0, NewNode("a0"))
	if ch, _ := a.Child(0); ch.Payload != "a0" || a.IndexOfChild(ch) != 0 {
		t.Errorf("expected a0 at position 0")
	}
}
