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

import (
	"fmt"
	"strings"
)

// Node is a node of the AVL tree. Each node exclusively owns its children;
// no node is ever reachable from more than one parent.
//
// Nodes handed out by the tree are read-only views which remain valid until
// the next mutation of the tree.
type Node[K, A any] struct {
	key         K
	left, right *Node[K, A]
	// height is the cached height of the subtree rooted at this node. A leaf
	// has height 1.
	height int
	aug    A
}

// Key returns the key stored in the node.
func (n *Node[K, A]) Key() K { return n.key }

// Left returns the left child, or nil.
func (n *Node[K, A]) Left() *Node[K, A] { return n.left }

// Right returns the right child, or nil.
func (n *Node[K, A]) Right() *Node[K, A] { return n.right }

// Height returns the cached height of the subtree rooted at n. It is safe to
// call on a nil node, which has height 0.
func (n *Node[K, A]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// BalanceFactor returns the height of the left subtree minus the height of
// the right subtree. A nil node has balance factor 0.
func (n *Node[K, A]) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// IsLeaf returns whether the node has no children.
func (n *Node[K, A]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// GetA returns the augmentation of the node.
func (n *Node[K, A]) GetA() *A {
	return &n.aug
}

func newNode[K, A any](c *Config[K, A], key K) *Node[K, A] {
	n := &Node[K, A]{key: key}
	c.update(n)
	return n
}

// min returns the leftmost node of the subtree rooted at n.
func (n *Node[K, A]) min() *Node[K, A] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of the subtree rooted at n.
func (n *Node[K, A]) max() *Node[K, A] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// insert inserts key into the subtree rooted at n and returns the new,
// rebalanced root of that subtree. If key is already present the subtree is
// left as it is and added is false.
func (n *Node[K, A]) insert(c *Config[K, A], key K) (_ *Node[K, A], added bool) {
	if n == nil {
		return newNode(c, key), true
	}
	switch v := c.cmp(key, n.key); {
	case v < 0:
		n.left, added = n.left.insert(c, key)
	case v > 0:
		n.right, added = n.right.insert(c, key)
	default:
		return n, false
	}
	c.update(n)
	return n.balance(c), added
}

// remove removes key from the subtree rooted at n and returns the new,
// rebalanced root of that subtree. Removing an absent key leaves the subtree
// as it is.
func (n *Node[K, A]) remove(c *Config[K, A], key K) (_ *Node[K, A], removed bool) {
	if n == nil {
		return nil, false
	}
	switch v := c.cmp(key, n.key); {
	case v < 0:
		n.left, removed = n.left.remove(c, key)
	case v > 0:
		n.right, removed = n.right.remove(c, key)
	default:
		if n.left == nil {
			child := n.right
			n.right = nil
			return child, true
		}
		if n.right == nil {
			child := n.left
			n.left = nil
			return child, true
		}
		// Replace the key with its in-order successor and remove the
		// successor from the right subtree instead.
		succ := n.right.min()
		n.key = succ.key
		n.right, _ = n.right.remove(c, succ.key)
		removed = true
	}
	c.update(n)
	return n.balance(c), removed
}

func (n *Node[K, A]) writeString(b *strings.Builder) {
	if n.left != nil {
		b.WriteString("(")
		n.left.writeString(b)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v", n.key)
	if n.right != nil {
		b.WriteString("(")
		n.right.writeString(b)
		b.WriteString(")")
	}
}
