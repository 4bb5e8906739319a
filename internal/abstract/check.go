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

// Sentinel errors returned by Check, wrapped with the offending key.
var (
	ErrOrder   = errors.New("keys out of order")
	ErrHeight  = errors.New("stale cached height")
	ErrBalance = errors.New("node out of balance")
	ErrLength  = errors.New("length does not match node count")
)

// Check verifies the structural invariants of the tree: keys are strictly
// increasing in order, every cached height equals one more than the taller
// child's, every balance factor lies in [-1, 1], and the tracked length
// matches the number of nodes.
func (t *Map[K, A]) Check() error {
	var count int
	for n := range t.nodesPostOrder {
		count++
		if want := 1 + max(n.left.Height(), n.right.Height()); n.height != want {
			return errors.Wrapf(ErrHeight, "node %v: height %d, expected %d", n.key, n.height, want)
		}
		if bf := n.BalanceFactor(); bf < -1 || bf > 1 {
			return errors.Wrapf(ErrBalance, "node %v: balance factor %d", n.key, bf)
		}
	}
	if count != t.length {
		return errors.Wrapf(ErrLength, "counted %d nodes, length is %d", count, t.length)
	}
	it := t.MakeIter()
	it.First()
	if !it.Valid() {
		return nil
	}
	prev := it.Cur()
	for it.Next(); it.Valid(); it.Next() {
		if t.cfg.cmp(prev, it.Cur()) >= 0 {
			return errors.Wrapf(ErrOrder, "%v does not precede %v", prev, it.Cur())
		}
		prev = it.Cur()
	}
	return nil
}
