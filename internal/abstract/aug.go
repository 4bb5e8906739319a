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

// Updater is used to update the augmentation of a node when the subtree
// rooted at it changes.
//
// Update is called bottom-up: by the time it runs for a node, the node's
// children have already been updated and the node's own height is current.
// It must therefore derive the augmentation from the node's key and the
// augmentations of its immediate children only. Rotations call Update on
// the demoted node before the promoted one.
type Updater[K, A any] interface {
	Update(n *Node[K, A])
}

// NoopUpdater is an Updater for trees which carry no augmentation.
type NoopUpdater[K any] struct{}

// Update implements Updater.
func (NoopUpdater[K]) Update(*Node[K, struct{}]) {}
