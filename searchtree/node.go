// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

// index of a node slot in the arena
type ref int32

// the sentinel slot
const nilRef ref = 0

// structural part of a node
type link struct {
	parent     ref    // points to parent node, or next free slot when released
	left       ref    // left sub-tree
	right      ref    // right sub-tree
	tag        int32  // balance tag, meaning depends on the balancer
	generation uint32 // incremented each time the slot is released
	free       bool   // slot is on the free list
}

// skeleton - the link structure shared between a tree and its
// balancer, it knows nothing of keys or values
type skeleton struct {
	links []link
	root  ref
}

func (s *skeleton) parent(x ref) ref { return s.links[x].parent }
func (s *skeleton) left(x ref) ref   { return s.links[x].left }
func (s *skeleton) right(x ref) ref  { return s.links[x].right }
func (s *skeleton) tag(x ref) int32  { return s.links[x].tag }

// the sentinel must never be written
func (s *skeleton) setParent(x ref, p ref) {
	if nilRef != x {
		s.links[x].parent = p
	}
}

func (s *skeleton) setTag(x ref, tag int32) {
	if nilRef != x {
		s.links[x].tag = tag
	}
}

func (s *skeleton) isLeftChild(x ref) bool {
	p := s.links[x].parent
	return nilRef != p && x == s.links[p].left
}
