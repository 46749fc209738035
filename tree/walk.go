package tree

// Action is called for every node visited by a walk. If it returns
// ErrSkipChildren, the children of the node are not visited. Any other
// error terminates the walk.
type Action[T comparable] func(node *Node[T], depth int) error

// TopDown traverses a (sub-)tree in preorder, depth first. Every node is
// visited before its children, and children in order.
func TopDown[T comparable](root *Node[T], action Action[T]) error {
	if root == nil {
		return ErrEmptyTree
	}
	err := topDown(root, 0, action)
	if err == ErrSkipChildren {
		return nil
	}
	return err
}

func topDown[T comparable](node *Node[T], depth int, action Action[T]) error {
	if err := action(node, depth); err != nil {
		if err == ErrSkipChildren {
			return nil
		}
		tracer().Debugf("tree walk stopped at depth %d: %v", depth, err)
		return err
	}
	for _, ch := range node.children {
		if ch == nil {
			continue
		}
		if err := topDown(ch, depth+1, action); err != nil {
			return err
		}
	}
	return nil
}

// Predicate is a function type to match against nodes of a tree.
type Predicate[T comparable] func(test *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T]) bool {
		return test.ChildCount() == 0
	}
}

// FindAll collects all nodes of a (sub-)tree matching a predicate, in
// preorder.
func FindAll[T comparable](root *Node[T], pred Predicate[T]) []*Node[T] {
	var selection []*Node[T]
	_ = TopDown(root, func(n *Node[T], _ int) error {
		if pred(n) {
			selection = append(selection, n)
		}
		return nil
	})
	return selection
}

// AncestorWith finds the nearest proper ancestor of a node matching a
// predicate, or nil.
func AncestorWith[T comparable](node *Node[T], pred Predicate[T]) *Node[T] {
	if node == nil {
		return nil
	}
	for p := node.parent; p != nil; p = p.parent {
		if pred(p) {
			return p
		}
	}
	return nil
}
