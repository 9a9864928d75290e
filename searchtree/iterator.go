// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

import (
	"github.com/bitmark-inc/searchtrees/fault"
)

// Minimum - return the node with the lowest key value
func (tree *Tree[K, V]) Minimum() Handle {
	return tree.handle(tree.minimum(tree.root))
}

// Maximum - return the node with the highest key value
func (tree *Tree[K, V]) Maximum() Handle {
	return tree.handle(tree.maximum(tree.root))
}

// Successor - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Tree[K, V]) Successor(h Handle) Handle {
	x := tree.resolve(h)
	if nilRef == x {
		panic(fault.ErrStaleHandle)
	}
	return tree.handle(tree.successor(x))
}

// Predecessor - given a node, return the node with the next lowest
// key value or nil if no more nodes
func (tree *Tree[K, V]) Predecessor(h Handle) Handle {
	x := tree.resolve(h)
	if nilRef == x {
		panic(fault.ErrStaleHandle)
	}
	return tree.handle(tree.predecessor(x))
}

// Keys - all keys in ascending order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for x := tree.minimum(tree.root); nilRef != x; x = tree.successor(x) {
		keys = append(keys, tree.keys[x])
	}
	return keys
}
