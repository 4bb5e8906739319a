package abstract

// LowLevelIterator is exposed to developers within this module for use
// implemented augmented search functionality.
type LowLevelIterator[K, A any] Iterator[K, A]

// LowLevel converts an iterator to a LowLevelIterator. Given this package
// is internal, callers outside of this module cannot construct a
// LowLevelIterator.
func LowLevel[K, A any](it *Iterator[K, A]) *LowLevelIterator[K, A] {
	return it.lowLevel()
}

// Config returns the Map's config.
func (i *LowLevelIterator[K, A]) Config() *Config[K, A] {
	return &i.r.cfg
}

// Root returns the root of the Map being iterated.
func (i *LowLevelIterator[K, A]) Root() *Node[K, A] {
	return i.r.root
}

// Node returns the current node.
func (i *LowLevelIterator[K, A]) Node() *Node[K, A] {
	return i.node
}

// SetNode sets the current node. Setting nil invalidates the iterator
// without clearing its stack.
func (i *LowLevelIterator[K, A]) SetNode(n *Node[K, A]) {
	i.node = n
}

// Push records n as a pending ancestor, to be visited once the iterator
// has finished with n's left subtree.
func (i *LowLevelIterator[K, A]) Push(n *Node[K, A]) {
	i.s.push(n)
}

// Pop removes and returns the most recently pushed pending ancestor, or nil
// if there is none.
func (i *LowLevelIterator[K, A]) Pop() *Node[K, A] {
	if i.s.len() == 0 {
		return nil
	}
	return i.s.pop()
}

// Depth returns the number of pending ancestors on the stack.
func (i *LowLevelIterator[K, A]) Depth() int {
	return i.s.len()
}
