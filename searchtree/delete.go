// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

// Erase - remove the node with a matching key, returns the number of
// nodes removed (0 or 1)
func (tree *Tree[K, V]) Erase(key K) int {
	x := tree.search(key)
	if nilRef == x {
		return 0
	}
	tree.remove(x)
	return 1
}

// EraseHandle - remove the node a handle refers to
//
// a nil handle is ignored; a stale one panics
func (tree *Tree[K, V]) EraseHandle(h Handle) {
	x := tree.resolve(h)
	if nilRef == x {
		return
	}
	tree.remove(x)
}

// unlink z, let the balancer repair the path it disturbed, then
// reclaim z's slot
//
// with two children the in-order successor y moves into z's position
// and takes over z's tag, so the position that actually vanishes is
// y's old one
func (tree *Tree[K, V]) remove(z ref) {
	s := &tree.skeleton
	var r removal

	switch {
	case nilRef == s.left(z):
		r = tree.splice(z, s.right(z))
	case nilRef == s.right(z):
		r = tree.splice(z, s.left(z))
	default:
		y := s.minimum(s.right(z))
		r.replacement = s.right(y)
		r.removedTag = s.tag(y)
		if y == s.right(z) {
			r.parent = y
			r.leftShrank = false
		} else {
			r.parent = s.parent(y)
			r.leftShrank = true
			s.transplant(y, s.right(y))
			s.links[y].right = s.right(z)
			s.setParent(s.right(y), y)
		}
		s.transplant(z, y)
		s.links[y].left = s.left(z)
		s.setParent(s.left(y), y)
		s.links[y].tag = s.tag(z)
	}

	tree.balancer.afterErase(r)
	tree.release(z)
	tree.count -= 1
}

// replace z by its only child (or nil)
func (tree *Tree[K, V]) splice(z ref, child ref) removal {
	s := &tree.skeleton
	r := removal{
		replacement: child,
		parent:      s.parent(z),
		leftShrank:  s.isLeftChild(z),
		removedTag:  s.tag(z),
	}
	s.transplant(z, child)
	return r
}
