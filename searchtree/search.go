// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

// Find - locate the node holding key, the returned handle is nil if
// the key is absent
func (tree *Tree[K, V]) Find(key K) Handle {
	x := tree.search(key)
	tree.balancer.afterFind(x)
	return tree.handle(x)
}

// Get - the value stored under key
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	x := tree.search(key)
	tree.balancer.afterFind(x)
	if nilRef == x {
		var zero V
		return zero, false
	}
	return tree.values[x], true
}

// internal: plain descent, no balancer involvement
func (tree *Tree[K, V]) search(key K) ref {
	x := tree.root
	for nilRef != x {
		c := tree.compare(key, tree.keys[x])
		switch {
		case 0 == c:
			return x
		case c < 0:
			x = tree.links[x].left
		default:
			x = tree.links[x].right
		}
	}
	return nilRef
}
