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

// Package avltree provides a height-balanced binary search tree holding a
// set of unique keys ordered by a user supplied comparison function.
//
// After every insertion and deletion each node's left and right subtree
// heights differ by at most one, so all operations run in O(log n).
//
// A Tree is not safe for concurrent mutation. Either confine it to a single
// goroutine or guard it with a sync.RWMutex; concurrent readers are fine
// while no writer is active.
package avltree

import (
	"iter"

	"github.com/ajwerner/avltree/internal/abstract"
	"golang.org/x/exp/constraints"
)

// Node is a read-only view of a node in a Tree. It is valid until the next
// mutation of the tree it came from.
type Node[T any] = abstract.Node[T, struct{}]

// Tree is an AVL tree of unique keys of type T.
type Tree[T any] struct {
	t abstract.Map[T, struct{}]
}

// New returns an empty tree ordered by cmp, which must return a negative
// number, zero or a positive number when a is less than, equal to or greater
// than b.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{
		t: abstract.MakeMap[T, struct{}](cmp, abstract.NoopUpdater[T]{}),
	}
}

// NewOrdered returns an empty tree using the natural ordering of T.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(Compare[T])
}

// Compare is a comparison function for ordered types.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// Insert adds key to the tree. Inserting a key which is already present
// leaves the tree unchanged and returns false.
func (t *Tree[T]) Insert(key T) bool { return t.t.Insert(key) }

// Delete removes key from the tree. Deleting an absent key leaves the tree
// unchanged and returns false.
func (t *Tree[T]) Delete(key T) bool { return t.t.Delete(key) }

// Search returns the node holding key, or nil if it is absent.
func (t *Tree[T]) Search(key T) *Node[T] { return t.t.Get(key) }

// Contains returns whether key is present.
func (t *Tree[T]) Contains(key T) bool { return t.t.Get(key) != nil }

// Min returns the lowest key. ok is false if the tree is empty.
func (t *Tree[T]) Min() (key T, ok bool) {
	if n := t.t.Min(); n != nil {
		return n.Key(), true
	}
	return key, false
}

// Max returns the highest key. ok is false if the tree is empty.
func (t *Tree[T]) Max() (key T, ok bool) {
	if n := t.t.Max(); n != nil {
		return n.Key(), true
	}
	return key, false
}

// IsEmpty returns true if the tree holds no keys.
func (t *Tree[T]) IsEmpty() bool { return t.t.Root() == nil }

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int { return t.t.Len() }

// Height returns the height of the tree; 0 when empty.
func (t *Tree[T]) Height() int { return t.t.Height() }

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] { return t.t.Root() }

// Leaves returns the number of nodes with no children.
func (t *Tree[T]) Leaves() int { return t.t.Leaves() }

// Clear removes all keys.
func (t *Tree[T]) Clear() { t.t.Reset() }

// InOrder returns the keys in ascending order.
func (t *Tree[T]) InOrder() iter.Seq[T] { return t.t.InOrder() }

// PreOrder returns the keys in pre-order: each node before its left
// subtree, then its right subtree.
func (t *Tree[T]) PreOrder() iter.Seq[T] { return t.t.PreOrder() }

// PostOrder returns the keys in post-order: both subtrees before the node.
func (t *Tree[T]) PostOrder() iter.Seq[T] { return t.t.PostOrder() }

// Ascend returns, in ascending order, the keys greater than or equal to from.
func (t *Tree[T]) Ascend(from T) iter.Seq[T] { return t.t.Ascend(from) }

// Check verifies the ordering, height and balance invariants of the tree.
func (t *Tree[T]) Check() error { return t.t.Check() }

// String returns the tree in a compact parenthesized form in which every
// subtree is wrapped in parentheses, e.g. "((8)9(11))13(21)".
func (t *Tree[T]) String() string { return t.t.String() }

// Iterator is a cursor over the keys of a Tree in ascending order.
type Iterator[T any] struct {
	it abstract.Iterator[T, struct{}]
}

// MakeIter returns an unpositioned Iterator. It must not be used after the
// tree is modified.
func (t *Tree[T]) MakeIter() Iterator[T] {
	return Iterator[T]{t.t.MakeIter()}
}

func (it *Iterator[T]) First() { it.it.First() }

func (it *Iterator[T]) Last() { it.it.Last() }

func (it *Iterator[T]) SeekGE(key T) { it.it.SeekGE(key) }

func (it *Iterator[T]) SeekLT(key T) { it.it.SeekLT(key) }

func (it *Iterator[T]) Next() { it.it.Next() }

func (it *Iterator[T]) Valid() bool { return it.it.Valid() }

func (it *Iterator[T]) Cur() T { return it.it.Cur() }
