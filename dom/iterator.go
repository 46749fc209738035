package dom

// TreeIterator enumerates the node ids of a (sub-)tree in preorder,
// depth first.
//
//    it := doc.Iterate(doc.Root())
//    for id, ok := it.Next(); ok; id, ok = it.Next() {
//        ...
//    }
type TreeIterator struct {
	doc   *Document
	stack []NodeID
}

// Iterate returns an iterator over the subtree starting at node from.
// For an unknown id the iterator is empty.
func (doc *Document) Iterate(from NodeID) *TreeIterator {
	it := &TreeIterator{doc: doc}
	if _, ok := doc.NodeByID(from); ok {
		it.stack = append(it.stack, from)
	}
	return it
}

// Next returns the next node id, or false if the iteration is exhausted.
func (it *TreeIterator) Next() (NodeID, bool) {
	if len(it.stack) == 0 {
		return NoNode, false
	}
	id := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if children, ok := it.doc.Children(id); ok {
		for i := len(children) - 1; i >= 0; i-- {
			it.stack = append(it.stack, children[i])
		}
	}
	return id, true
}
