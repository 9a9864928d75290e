// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

// Insert - add a new key/value pair, returns false and leaves the
// tree untouched if the key is already present
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	s := &tree.skeleton
	p := nilRef
	x := s.root
	c := 0
	for nilRef != x {
		p = x
		c = tree.compare(key, tree.keys[x])
		switch {
		case 0 == c:
			return false
		case c < 0:
			x = s.left(x)
		default:
			x = s.right(x)
		}
	}

	n := tree.allocate(key, value)
	s.links[n].parent = p
	switch {
	case nilRef == p:
		s.root = n
	case c < 0:
		s.links[p].left = n
	default:
		s.links[p].right = n
	}
	tree.count += 1

	tree.balancer.afterInsert(n)
	return true
}
