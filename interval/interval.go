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

// Package interval provides a set of intervals backed by an AVL tree in
// which every node tracks the greatest end key of its subtree, allowing
// scans for overlapping intervals to skip subtrees which end too early.
package interval

import (
	"iter"

	"github.com/ajwerner/avltree/internal/abstract"
)

// Cmp is a comparison function for keys.
type Cmp[K any] func(K, K) int

// Set is a set of intervals. An interval i covers the keys in
// [key(i), end(i)). An interval for which hasEnd returns false covers
// exactly key(i).
type Set[I, K any] struct {
	t  abstract.Map[I, aug[K]]
	up *updater[I, K]
}

// MakeSet constructs a new Set. cmpI orders intervals and must order them
// by key first. hasEnd may be nil, in which case every interval has an end.
func MakeSet[I, K any](
	cmpK func(K, K) int, cmpI func(I, I) int, key, end func(I) K, hasEnd func(I) bool,
) Set[I, K] {
	up := &updater[I, K]{
		key:    key,
		end:    end,
		cmp:    cmpK,
		hasEnd: hasEnd,
	}
	return Set[I, K]{
		t:  abstract.MakeMap[I, aug[K]](cmpI, up),
		up: up,
	}
}

// Upsert adds the interval to the set. It returns false if an equal
// interval was already present.
func (s *Set[I, K]) Upsert(item I) (added bool) {
	return s.t.Insert(item)
}

// Delete removes the interval from the set. It returns false if it was not
// present.
func (s *Set[I, K]) Delete(item I) (removed bool) {
	return s.t.Delete(item)
}

func (s *Set[I, K]) Len() int { return s.t.Len() }

func (s *Set[I, K]) Check() error { return s.t.Check() }

// Iterator returns a new, unpositioned Iterator.
func (s *Set[I, K]) Iterator() Iterator[I, K] {
	return Iterator[I, K]{
		it: s.t.MakeIter(),
		up: s.up,
	}
}

// Overlaps returns the intervals in the set which overlap bounds, in
// order.
func (s *Set[I, K]) Overlaps(bounds I) iter.Seq[I] {
	return func(yield func(I) bool) {
		it := s.Iterator()
		for it.FirstOverlap(bounds); it.Valid(); it.NextOverlap() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}
