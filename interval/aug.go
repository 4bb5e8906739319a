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

// aug holds the greatest upper bound of any interval in the subtree.
type aug[K any] struct {
	keyBound[K]
}

type updater[I, K any] struct {
	key, end func(I) K
	cmp      Cmp[K]
	hasEnd   func(I) bool
}

func (u *updater[I, K]) Update(n *abstract.Node[I, aug[K]]) {
	up := u.upperBound(n.Key())
	for _, c := range [2]*abstract.Node[I, aug[K]]{n.Left(), n.Right()} {
		if c != nil && up.compare(u.cmp, c.GetA().keyBound) < 0 {
			up = c.GetA().keyBound
		}
	}
	n.GetA().keyBound = up
}

type keyBound[K any] struct {
	k         K
	inclusive bool
}

func (u *updater[I, K]) upperBound(interval I) keyBound[K] {
	if u.hasEnd != nil && !u.hasEnd(interval) {
		return keyBound[K]{k: u.key(interval), inclusive: true}
	}
	return keyBound[K]{k: u.end(interval)}
}

// overlaps returns whether the intervals a and b share at least one key.
func (u *updater[I, K]) overlaps(a, b I) bool {
	return u.upperBound(a).contains(u.cmp, u.key(b)) &&
		u.upperBound(b).contains(u.cmp, u.key(a))
}

func (b keyBound[K]) compare(cmp Cmp[K], o keyBound[K]) int {
	c := cmp(b.k, o.k)
	if c != 0 {
		return c
	}
	if b.inclusive == o.inclusive {
		return 0
	}
	if b.inclusive {
		return 1
	}
	return -1
}

func (b keyBound[K]) contains(cmp Cmp[K], o K) bool {
	c := cmp(o, b.k)
	if c == 0 {
		return b.inclusive
	}
	return c < 0
}
