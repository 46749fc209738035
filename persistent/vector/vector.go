package vector

// Vector is an immutable sequence of values. The zero value is an empty
// vector, ready to use.
type Vector[T any] struct {
	props
	length uint32
	tail   []T
	root   *vnode[T]
}

// Immutable creates an empty vector.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// BitsPerLevel is an option to set the degree of the underlying tree of a
// vector. The degree of the tree will be 2^n. Accepted values are [1…5];
// default is 5, i.e. a degree of 32.
//
// Use it like this:
//
//     vec := vector.Immutable[int](vector.BitsPerLevel(2))
//
func BitsPerLevel(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		return props{bits: uint32(n)}
	}
	return Option{config: conf}
}

// Of creates a vector from a list of values.
func Of[T any](values ...T) Vector[T] {
	v := Vector[T]{}
	for _, x := range values {
		v = v.Push(x)
	}
	return v
}

// ---------------------------------------------------------------------------

// Len returns the number of values of a vector.
func (v Vector[T]) Len() int {
	return int(v.length)
}

// Last returns the last value of a vector, if any.
func (v Vector[T]) Last() (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}
	return v.tail[len(v.tail)-1], true
}

// Get returns the value at position i. Get panics if i is out of range.
func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && uint32(i) < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	v.props = v.props.init()
	if uint32(i) >= v.tailOffset() {
		return v.tail[uint32(i)-v.tailOffset()]
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(uint32(i)>>level)&v.mask()]
	}
	return node.leafs[uint32(i)&v.mask()]
}

// Set returns a copy of v with the value at position i replaced. Set panics
// if i is out of range.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	assertThat(i >= 0 && uint32(i) < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	v.props = v.props.init()
	if uint32(i) >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[uint32(i)-v.tailOffset()] = value
		return Vector[T]{length: v.length, props: v.props, root: v.root, tail: newTail}
	}
	newRoot := v.assoc(v.shift, v.root, uint32(i), value)
	return Vector[T]{length: v.length, props: v.props, root: newRoot, tail: v.tail}
}

func (v Vector[T]) assoc(level uint32, node *vnode[T], i uint32, value T) *vnode[T] {
	n := node.clone()
	if level == 0 {
		n.leafs[i&v.mask()] = value
		return n
	}
	subidx := (i >> level) & v.mask()
	n.children[subidx] = v.assoc(level-v.bits, node.children[subidx], i, value)
	return n
}

// Push returns a copy of v with value appended.
func (v Vector[T]) Push(value T) Vector[T] {
	v.props = v.props.init()
	if !v.tailFull() { // just append value to tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Vector[T]{length: v.length + 1, props: v.props, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into tree
	leaf := newLeaf(v.tail)
	newTail := []T{value}
	if v.root == nil {
		root := emptyNode[T](v.degree())
		root.children[0] = leaf
		return Vector[T]{length: v.length + 1, props: v.props, root: root, tail: newTail}
	}
	if (v.length >> v.bits) > (1 << v.shift) { // root is full ⇒ increment shift
		root := emptyNode[T](v.degree())
		root.children[0] = v.root
		root.children[1] = newPath(v.shift, v.bits, v.degree(), leaf)
		tracer().Debugf("vector of length %d grows to height %d", v.length+1, (v.shift+v.bits)/v.bits)
		return Vector[T]{length: v.length + 1, props: v.props.withShift(v.shift + v.bits), root: root, tail: newTail}
	}
	root := v.pushLeaf(v.shift, v.root, leaf)
	return Vector[T]{length: v.length + 1, props: v.props, root: root, tail: newTail}
}

// pushLeaf inserts a leaf for the current tail into the trie.
func (v Vector[T]) pushLeaf(level uint32, parent *vnode[T], leaf *vnode[T]) *vnode[T] {
	subidx := ((v.length - 1) >> level) & v.mask()
	n := parent.clone()
	if level == v.bits {
		n.children[subidx] = leaf
		return n
	}
	if child := parent.children[subidx]; child != nil {
		n.children[subidx] = v.pushLeaf(level-v.bits, child, leaf)
	} else {
		n.children[subidx] = newPath(level-v.bits, v.bits, v.degree(), leaf)
	}
	return n
}

// Each calls f for every value of v, in order.
func (v Vector[T]) Each(f func(i int, value T)) {
	for i := 0; i < v.Len(); i++ {
		f(i, v.Get(i))
	}
}

// Slice returns the values of v as a newly allocated slice.
func (v Vector[T]) Slice() []T {
	s := make([]T, 0, v.Len())
	v.Each(func(_ int, value T) {
		s = append(s, value)
	})
	return s
}

func (v Vector[T]) tailOffset() uint32 {
	return v.length - uint32(len(v.tail))
}

func (v Vector[T]) tailFull() bool {
	return uint32(len(v.tail)) >= v.degree()
}

func (p props) withShift(shift uint32) props {
	p.shift = shift
	return p
}
