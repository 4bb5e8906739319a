package abstract

// iterStack represents a stack of nodes, which captures iteration state as
// an Iterator descends a Map. For an in-order walk it holds the ancestors
// whose keys have yet to be visited.
type iterStack[K, A any] struct {
	a    iterStackArr[K, A]
	aLen int16 // -1 when using s
	s    []*Node[K, A]
}

// An AVL tree of height 16 holds at least 2583 keys.
const iterStackDepth = 16

// Used to avoid allocations for stacks below a certain size.
type iterStackArr[K, A any] [iterStackDepth]*Node[K, A]

func (is *iterStack[K, A]) push(n *Node[K, A]) {
	if is.aLen == -1 {
		is.s = append(is.s, n)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]*Node[K, A], int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = n
		is.aLen = -1
	} else {
		is.a[is.aLen] = n
		is.aLen++
	}
}

func (is *iterStack[K, A]) pop() *Node[K, A] {
	if is.aLen == -1 {
		n := is.s[len(is.s)-1]
		is.s[len(is.s)-1] = nil
		is.s = is.s[:len(is.s)-1]
		return n
	}
	is.aLen--
	n := is.a[is.aLen]
	is.a[is.aLen] = nil
	return n
}

func (is *iterStack[K, A]) peek() *Node[K, A] {
	if is.aLen == -1 {
		return is.s[len(is.s)-1]
	}
	return is.a[is.aLen-1]
}

func (is *iterStack[K, A]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}

func (is *iterStack[K, A]) reset() {
	if is.aLen == -1 {
		clear(is.s)
		is.s = is.s[:0]
	} else {
		clear(is.a[:is.aLen])
		is.aLen = 0
	}
}
