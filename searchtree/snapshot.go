// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

// Slot - one position of a complete binary layout of the tree
type Slot[K any] struct {
	Key       K
	Tag       int32
	Highlight bool // red node, or AA node on its parent's level
	Present   bool // false for a hole
}

// Snapshot - the tree in level order as a complete binary layout:
// the children of position i are at 2i+1 and 2i+2, absent nodes are
// holes
//
// the layout doubles with every level so this is only meant for
// displaying small trees
func (tree *Tree[K, V]) Snapshot() []Slot[K] {
	s := &tree.skeleton
	h := s.height(s.root)
	if h < 0 {
		return nil
	}
	size := 1<<(h+1) - 1
	slots := make([]Slot[K], size)
	position := make([]ref, size)
	position[0] = s.root
	for i := 0; i < size; i += 1 {
		x := position[i]
		if nilRef == x {
			continue
		}
		slots[i] = Slot[K]{
			Key:       tree.keys[x],
			Tag:       s.tag(x),
			Highlight: tree.highlight(x),
			Present:   true,
		}
		if c := 2*i + 1; c < size {
			position[c] = s.left(x)
			position[c+1] = s.right(x)
		}
	}
	return slots
}

func (tree *Tree[K, V]) highlight(x ref) bool {
	s := &tree.skeleton
	switch tree.variant {
	case RedBlack:
		return Red == Color(s.tag(x))
	case AA:
		p := s.parent(x)
		return nilRef != p && s.tag(p) == s.tag(x)
	}
	return false
}
