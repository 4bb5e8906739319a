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

import "github.com/cockroachdb/errors"

// balance restores the AVL property at n, assuming it holds for both of n's
// subtrees and that their heights differ by at most 2. It returns the new
// root of the subtree.
//
// A child with a balance factor of 0 is handled with a single rotation. This
// case only arises during removal.
func (n *Node[K, A]) balance(c *Config[K, A]) *Node[K, A] {
	switch bf := n.BalanceFactor(); {
	case bf > 1:
		if n.left.BalanceFactor() >= 0 {
			return n.rotateRight(c)
		}
		return n.rotateLeftRight(c)
	case bf < -1:
		if n.right.BalanceFactor() <= 0 {
			return n.rotateLeft(c)
		}
		return n.rotateRightLeft(c)
	default:
		return n
	}
}

// rotateRight promotes the left child of n.
//
// Before:
//
//	      n
//	     / \
//	    y   c
//	   / \
//	  a   b
//
// After:
//
//	    y
//	   / \
//	  a   n
//	     / \
//	    b   c
func (n *Node[K, A]) rotateRight(c *Config[K, A]) *Node[K, A] {
	if n == nil || n.left == nil {
		panic(errors.AssertionFailedf("rotateRight requires a node with a left child"))
	}
	y := n.left
	n.left = y.right
	y.right = n
	c.update(n)
	c.update(y)
	return y
}

// rotateLeft promotes the right child of n. It is the mirror image of
// rotateRight.
func (n *Node[K, A]) rotateLeft(c *Config[K, A]) *Node[K, A] {
	if n == nil || n.right == nil {
		panic(errors.AssertionFailedf("rotateLeft requires a node with a right child"))
	}
	y := n.right
	n.right = y.left
	y.left = n
	c.update(n)
	c.update(y)
	return y
}

// rotateLeftRight fixes a left-heavy node whose left child leans right.
func (n *Node[K, A]) rotateLeftRight(c *Config[K, A]) *Node[K, A] {
	if n == nil {
		panic(errors.AssertionFailedf("rotateLeftRight on nil node"))
	}
	n.left = n.left.rotateLeft(c)
	return n.rotateRight(c)
}

// rotateRightLeft fixes a right-heavy node whose right child leans left.
func (n *Node[K, A]) rotateRightLeft(c *Config[K, A]) *Node[K, A] {
	if n == nil {
		panic(errors.AssertionFailedf("rotateRightLeft on nil node"))
	}
	n.right = n.right.rotateRight(c)
	return n.rotateLeft(c)
}
