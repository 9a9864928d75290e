// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

// rotateLeft - x's right child takes x's place and x becomes its
// left child; only links change, balance tags are left to the caller
//
//	    x                y
//	   / \              / \
//	  a   y     =>     x   c
//	     / \          / \
//	    b   c        a   b
func (s *skeleton) rotateLeft(x ref) ref {
	y := s.links[x].right
	b := s.links[y].left

	s.links[x].right = b
	s.setParent(b, x)

	s.transplant(x, y)

	s.links[y].left = x
	s.links[x].parent = y
	return y
}

// rotateRight - mirror of rotateLeft
func (s *skeleton) rotateRight(x ref) ref {
	y := s.links[x].left
	b := s.links[y].right

	s.links[x].left = b
	s.setParent(b, x)

	s.transplant(x, y)

	s.links[y].right = x
	s.links[x].parent = y
	return y
}
