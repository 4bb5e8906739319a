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

// Config is used to configure the tree. It consists of a comparison function
// for keys and an optional Updater which maintains the augmentation. It is
// exposed on the low-level iterator for use by augmented searches.
type Config[K, A any] struct {

	// Updater is used to update the augmentations of the tree. It may be nil
	// if the tree carries no augmentation.
	Updater Updater[K, A]

	cmp func(K, K) int
}

// Compare compares two keys using the same comparison function as the Map.
func (c *Config[K, A]) Compare(a, b K) int { return c.cmp(a, b) }

func makeConfig[K, A any](cmp func(K, K) int, up Updater[K, A]) Config[K, A] {
	return Config[K, A]{
		Updater: up,
		cmp:     cmp,
	}
}

// update recomputes the cached height of n from its children and then
// refreshes its augmentation. It must be called on a node as soon as
// either of its child links changes.
func (c *Config[K, A]) update(n *Node[K, A]) {
	if n == nil {
		return
	}
	n.height = 1 + max(n.left.Height(), n.right.Height())
	if c.Updater != nil {
		c.Updater.Update(n)
	}
}
