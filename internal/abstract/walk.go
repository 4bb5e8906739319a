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

import "iter"

// The sequences below walk the tree with an explicit stack. Each call to a
// sequence starts again from the root and shares no state with other calls.
// The tree must not be modified while a sequence is being consumed.

// InOrder returns the keys of the tree in ascending order.
func (t *Map[K, A]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := t.MakeIter()
		for it.First(); it.Valid(); it.Next() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}

// Ascend returns the keys greater-than or equal to from in ascending order.
func (t *Map[K, A]) Ascend(from K) iter.Seq[K] {
	return func(yield func(K) bool) {
		it := t.MakeIter()
		for it.SeekGE(from); it.Valid(); it.Next() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}

// PreOrder returns the keys of the tree with every node preceding its
// left subtree, which in turn precedes its right subtree.
func (t *Map[K, A]) PreOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range t.nodesPreOrder {
			if !yield(n.key) {
				return
			}
		}
	}
}

// PostOrder returns the keys of the tree with both subtrees of a node
// preceding the node itself.
func (t *Map[K, A]) PostOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range t.nodesPostOrder {
			if !yield(n.key) {
				return
			}
		}
	}
}

func (t *Map[K, A]) nodesPreOrder(yield func(*Node[K, A]) bool) {
	if t.root == nil {
		return
	}
	var s iterStack[K, A]
	s.push(t.root)
	for s.len() > 0 {
		n := s.pop()
		if !yield(n) {
			return
		}
		if n.right != nil {
			s.push(n.right)
		}
		if n.left != nil {
			s.push(n.left)
		}
	}
}

func (t *Map[K, A]) nodesPostOrder(yield func(*Node[K, A]) bool) {
	var s iterStack[K, A]
	var last *Node[K, A]
	n := t.root
	for n != nil || s.len() > 0 {
		if n != nil {
			s.push(n)
			n = n.left
			continue
		}
		top := s.peek()
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		s.pop()
		if !yield(top) {
			return
		}
		last = top
	}
}
