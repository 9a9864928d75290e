// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

// internal: lowest node in a sub-tree
func (s *skeleton) minimum(x ref) ref {
	if nilRef == x {
		return nilRef
	}
	for nilRef != s.links[x].left {
		x = s.links[x].left
	}
	return x
}

// internal: highest node in a sub-tree
func (s *skeleton) maximum(x ref) ref {
	if nilRef == x {
		return nilRef
	}
	for nilRef != s.links[x].right {
		x = s.links[x].right
	}
	return x
}

// internal: next node in key order
func (s *skeleton) successor(x ref) ref {
	if nilRef == x {
		return nilRef
	}
	if nilRef != s.links[x].right {
		return s.minimum(s.links[x].right)
	}
	y := s.links[x].parent
	for nilRef != y && x == s.links[y].right {
		x = y
		y = s.links[y].parent
	}
	return y
}

// internal: previous node in key order
func (s *skeleton) predecessor(x ref) ref {
	if nilRef == x {
		return nilRef
	}
	if nilRef != s.links[x].left {
		return s.maximum(s.links[x].left)
	}
	y := s.links[x].parent
	for nilRef != y && x == s.links[y].left {
		x = y
		y = s.links[y].parent
	}
	return y
}

// internal: height in edges of a sub-tree, -1 if empty
//
// level by level so that a degenerate plain tree does not recurse
// once per node
func (s *skeleton) height(x ref) int {
	if nilRef == x {
		return -1
	}
	h := -1
	row := []ref{x}
	next := make([]ref, 0, 2)
	for 0 != len(row) {
		h += 1
		next = next[:0]
		for _, n := range row {
			if l := s.links[n].left; nilRef != l {
				next = append(next, l)
			}
			if r := s.links[n].right; nilRef != r {
				next = append(next, r)
			}
		}
		row, next = next, row
	}
	return h
}

// internal: number of edges from the root
func (s *skeleton) depth(x ref) int {
	d := 0
	for p := s.links[x].parent; nilRef != p; p = s.links[p].parent {
		d += 1
	}
	return d
}

// replace the sub-tree rooted at u with the one rooted at v in u's
// parent, v may be nil
func (s *skeleton) transplant(u ref, v ref) {
	if nilRef == u {
		return
	}
	p := s.links[u].parent
	switch {
	case nilRef == p:
		s.root = v
	case u == s.links[p].left:
		s.links[p].left = v
	default:
		s.links[p].right = v
	}
	s.setParent(v, p)
}
