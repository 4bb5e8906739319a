// Copyright 2018 The Cockroach Authors.
// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

// Iterator is responsible for search and in-order traversal within a Map.
type Iterator[K, A any] struct {
	r    *Map[K, A]
	node *Node[K, A]
	s    iterStack[K, A]
}

func (i *Iterator[K, A]) lowLevel() *LowLevelIterator[K, A] {
	return (*LowLevelIterator[K, A])(i)
}

// Reset invalidates the iterator and clears its stack.
func (i *Iterator[K, A]) Reset() {
	i.node = nil
	i.s.reset()
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, A]) SeekGE(key K) {
	i.Reset()
	for n := i.r.root; n != nil; {
		v := i.r.cfg.cmp(key, n.key)
		if v > 0 {
			n = n.right
			continue
		}
		i.s.push(n)
		if v == 0 {
			break
		}
		n = n.left
	}
	i.ascend()
}

// SeekLT seeks to the last key less-than the provided key.
func (i *Iterator[K, A]) SeekLT(key K) {
	i.Reset()
	var last *Node[K, A]
	for n := i.r.root; n != nil; {
		if i.r.cfg.cmp(key, n.key) > 0 {
			last = n
			n = n.right
		} else {
			n = n.left
		}
	}
	if last != nil {
		i.SeekGE(last.key)
	}
}

// First seeks to the first key in the Map.
func (i *Iterator[K, A]) First() {
	i.Reset()
	i.descendLeft(i.r.root)
	i.ascend()
}

// Last seeks to the last key in the Map. Iteration only proceeds forward
// from there, so Next after Last invalidates the iterator.
func (i *Iterator[K, A]) Last() {
	i.Reset()
	i.node = i.r.root.max()
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, A]) Next() {
	if i.node == nil {
		return
	}
	i.descendLeft(i.node.right)
	i.ascend()
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, A]) Valid() bool {
	return i.node != nil
}

// Cur returns the key at the Iterator's current position. It is illegal
// to call Cur if the Iterator is not valid.
func (i *Iterator[K, A]) Cur() K {
	return i.node.key
}

// Node returns the node at the Iterator's current position, or nil.
func (i *Iterator[K, A]) Node() *Node[K, A] {
	return i.node
}

// descendLeft pushes n and its chain of left descendants.
func (i *Iterator[K, A]) descendLeft(n *Node[K, A]) {
	for ; n != nil; n = n.left {
		i.s.push(n)
	}
}

// ascend pops the next pending ancestor into the current position, or
// invalidates the iterator if there is none.
func (i *Iterator[K, A]) ascend() {
	if i.s.len() == 0 {
		i.node = nil
		return
	}
	i.node = i.s.pop()
}
