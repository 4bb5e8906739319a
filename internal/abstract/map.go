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

import "strings"

// Map is an implementation of an augmented AVL tree keyed by K. Each node
// carries an augmentation of type A which is maintained by the configured
// Updater.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
type Map[K, A any] struct {
	root   *Node[K, A]
	length int
	cfg    Config[K, A]
}

// MakeMap constructs a new Map with the given comparison function and
// augmentation updater. The updater may be nil.
func MakeMap[K, A any](cmp func(K, K) int, up Updater[K, A]) Map[K, A] {
	return Map[K, A]{
		cfg: makeConfig(cmp, up),
	}
}

// Reset removes all items from the Map.
func (t *Map[K, A]) Reset() {
	t.root = nil
	t.length = 0
}

// Insert adds key to the tree. It returns false, leaving the tree unchanged,
// if an equal key is already present.
func (t *Map[K, A]) Insert(key K) (added bool) {
	if t.root, added = t.root.insert(&t.cfg, key); added {
		t.length++
	}
	return added
}

// Delete removes the key equal to the passed key from the tree. It returns
// false if no such key was present.
func (t *Map[K, A]) Delete(key K) (removed bool) {
	if t.root, removed = t.root.remove(&t.cfg, key); removed {
		t.length--
	}
	return removed
}

// Get returns the node holding a key equal to the passed key, or nil.
func (t *Map[K, A]) Get(key K) *Node[K, A] {
	n := t.root
	for n != nil {
		switch v := t.cfg.cmp(key, n.key); {
		case v < 0:
			n = n.left
		case v > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Min returns the node with the lowest key, or nil if the tree is empty.
func (t *Map[K, A]) Min() *Node[K, A] { return t.root.min() }

// Max returns the node with the highest key, or nil if the tree is empty.
func (t *Map[K, A]) Max() *Node[K, A] { return t.root.max() }

// Root returns the root node, or nil if the tree is empty.
func (t *Map[K, A]) Root() *Node[K, A] { return t.root }

// Config returns the Map's config.
func (t *Map[K, A]) Config() *Config[K, A] { return &t.cfg }

// MakeIter returns a new Iterator object. It is not safe to continue using an
// Iterator after modifications are made to the tree. If modifications are made,
// create a new Iterator.
func (t *Map[K, A]) MakeIter() Iterator[K, A] {
	it := Iterator[K, A]{r: t}
	it.Reset()
	return it
}

// Height returns the height of the tree.
func (t *Map[K, A]) Height() int {
	return t.root.Height()
}

// Len returns the number of items currently in the tree.
func (t *Map[K, A]) Len() int {
	return t.length
}

// Leaves returns the number of nodes without children.
func (t *Map[K, A]) Leaves() int {
	var leaves int
	for n := range t.nodesPreOrder {
		if n.IsLeaf() {
			leaves++
		}
	}
	return leaves
}

// String returns a string description of the tree. Each subtree is enclosed
// in parentheses around its root's key, e.g. "((1)2(3))4(5)".
func (t *Map[K, A]) String() string {
	if t.root == nil {
		return ";"
	}
	var b strings.Builder
	t.root.writeString(&b)
	return b.String()
}
