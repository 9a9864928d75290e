// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

import (
	"github.com/bitmark-inc/searchtrees/fault"
)

// Handle - refers to one node of a tree, the zero value means "no
// node"
type Handle struct {
	index      ref
	generation uint32
}

// IsNil - true if the handle refers to no node
func (h Handle) IsNil() bool {
	return nilRef == h.index
}

func (tree *Tree[K, V]) handle(x ref) Handle {
	if nilRef == x {
		return Handle{}
	}
	return Handle{
		index:      x,
		generation: tree.links[x].generation,
	}
}

// slot is live and has not been reused since the handle was made
func (tree *Tree[K, V]) current(h Handle) bool {
	if h.index <= nilRef || int(h.index) >= len(tree.links) {
		return false
	}
	l := &tree.links[h.index]
	return !l.free && l.generation == h.generation
}

// nil stays nil; anything else must be current
func (tree *Tree[K, V]) resolve(h Handle) ref {
	if h.IsNil() {
		return nilRef
	}
	if !tree.current(h) {
		panic(fault.ErrStaleHandle)
	}
	return h.index
}

// IsInTree - true if the handle refers to a live node reachable from
// the root
func (tree *Tree[K, V]) IsInTree(h Handle) bool {
	if nilRef == tree.root || !tree.current(h) {
		return false
	}
	x := h.index
	for nilRef != tree.parent(x) {
		x = tree.parent(x)
	}
	return x == tree.root
}

// Key - read the key from a node
func (tree *Tree[K, V]) Key(h Handle) K {
	x := tree.resolve(h)
	if nilRef == x {
		panic(fault.ErrStaleHandle)
	}
	return tree.keys[x]
}

// Value - read the value from a node
func (tree *Tree[K, V]) Value(h Handle) V {
	x := tree.resolve(h)
	if nilRef == x {
		panic(fault.ErrStaleHandle)
	}
	return tree.values[x]
}

// Depth - get the depth of a node, the root is at zero
func (tree *Tree[K, V]) Depth(h Handle) int {
	x := tree.resolve(h)
	if nilRef == x {
		panic(fault.ErrStaleHandle)
	}
	return tree.depth(x)
}
