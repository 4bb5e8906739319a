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

package interval

import "github.com/ajwerner/avltree/internal/abstract"

// Iterator iterates the intervals of a Set in order, either all of them or
// only those overlapping a search interval.
type Iterator[I, K any] struct {
	it abstract.Iterator[I, aug[K]]
	up *updater[I, K]

	bounds I
	set    bool
}

// An overlap scan is an in-order walk with two refinements:
//  1. a subtree is never entered if the greatest upper bound of its
//     intervals does not reach the start of the search interval, since no
//     interval within it can overlap.
//  2. the scan terminates at the first interval starting beyond the search
//     interval, since intervals are ordered by start key.

func (i *Iterator[I, K]) lowLevel() *abstract.LowLevelIterator[I, aug[K]] {
	return abstract.LowLevel(&i.it)
}

func (i *Iterator[I, K]) Reset() {
	var zero I
	i.bounds, i.set = zero, false
	i.it.Reset()
}

func (i *Iterator[I, K]) First() {
	i.Reset()
	i.it.First()
}

// Next moves to the next interval. It must not be mixed with overlap scans.
func (i *Iterator[I, K]) Next() { i.it.Next() }

func (i *Iterator[I, K]) Valid() bool { return i.it.Valid() }

// Cur returns the interval at the current position. It is illegal to call
// Cur if the Iterator is not valid.
func (i *Iterator[I, K]) Cur() I { return i.it.Cur() }

// FirstOverlap seeks to the first interval which overlaps bounds.
func (i *Iterator[I, K]) FirstOverlap(bounds I) {
	i.Reset()
	i.bounds, i.set = bounds, true
	i.descendLeft(i.lowLevel().Root())
	i.findNextOverlap()
}

// NextOverlap positions the iterator to the interval immediately following
// its current position that overlaps with the search interval.
func (i *Iterator[I, K]) NextOverlap() {
	if !i.Valid() {
		return
	}
	if !i.set {
		// Invalid. Mixed overlap scan with non-overlap scan.
		i.Reset()
		return
	}
	i.descendLeft(i.lowLevel().Node().Right())
	i.findNextOverlap()
}

// descendLeft pushes n and its chain of left descendants, stopping at the
// first subtree which cannot contain an overlap.
func (i *Iterator[I, K]) descendLeft(n *abstract.Node[I, aug[K]]) {
	ll := i.lowLevel()
	start := i.up.key(i.bounds)
	for ; n != nil && n.GetA().contains(i.up.cmp, start); n = n.Left() {
		ll.Push(n)
	}
}

func (i *Iterator[I, K]) findNextOverlap() {
	ll := i.lowLevel()
	limit := i.up.upperBound(i.bounds)
	for {
		n := ll.Pop()
		if n == nil || !limit.contains(i.up.cmp, i.up.key(n.Key())) {
			// Exhausted, or past possible overlaps.
			i.it.Reset()
			return
		}
		if i.up.overlaps(n.Key(), i.bounds) {
			ll.SetNode(n)
			return
		}
		i.descendLeft(n.Right())
	}
}
