// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

import (
	"fmt"

	"github.com/bitmark-inc/searchtrees/fault"
)

// AVL balance tag: height(right) - height(left), -1, 0, +1 at rest
// and transiently ±2 before a rotation
type avlBalancer struct {
	s *skeleton
}

func (b *avlBalancer) defaultTag() int32 { return 0 }

func (b *avlBalancer) afterFind(ref) {}

// walk up from the new leaf until a sub-tree keeps its height or a
// rotation restores it
func (b *avlBalancer) afterInsert(x ref) {
	s := b.s
	child := x
	for p := s.parent(child); nilRef != p; p = s.parent(child) {
		if child == s.left(p) {
			s.links[p].tag -= 1
		} else {
			s.links[p].tag += 1
		}
		switch s.tag(p) {
		case 0:
			return
		case -2, +2:
			b.rebalance(p)
			return
		}
		child = p
	}
}

// walk up from the vacated position; a sub-tree that keeps its
// height stops the walk
func (b *avlBalancer) afterErase(r removal) {
	s := b.s
	p := r.parent
	leftShrank := r.leftShrank
	for nilRef != p {
		if leftShrank {
			s.links[p].tag += 1
		} else {
			s.links[p].tag -= 1
		}

		top := p
		switch s.tag(p) {
		case -1, +1:
			return
		case -2, +2:
			top = b.rebalance(p)
			if 0 != s.tag(top) {
				return
			}
		}

		// sub-tree at top is one shorter than before
		p = s.parent(top)
		leftShrank = nilRef != p && top == s.left(p)
	}
}

// rotate a node whose tag reached ±2, returns the new sub-tree root
func (b *avlBalancer) rebalance(x ref) ref {
	s := b.s
	if s.tag(x) < 0 {
		if s.tag(s.left(x)) <= 0 {
			return b.rotateRight(x)
		}
		return b.rotateLeftRight(x)
	}
	if s.tag(s.right(x)) >= 0 {
		return b.rotateLeft(x)
	}
	return b.rotateRightLeft(x)
}

// single rotations: the general AVL tag arithmetic, which also
// covers the erase case where the child was balanced
func (b *avlBalancer) rotateLeft(x ref) ref {
	s := b.s
	y := s.rotateLeft(x)
	bx := s.links[x].tag - 1 - max(s.links[y].tag, 0)
	s.links[x].tag = bx
	s.links[y].tag += -1 + min(bx, 0)
	return y
}

func (b *avlBalancer) rotateRight(x ref) ref {
	s := b.s
	y := s.rotateRight(x)
	bx := s.links[x].tag + 1 - min(s.links[y].tag, 0)
	s.links[x].tag = bx
	s.links[y].tag += 1 + max(bx, 0)
	return y
}

// double rotation for x right heavy with a left heavy right child;
// the grandchild becomes the sub-tree root
func (b *avlBalancer) rotateRightLeft(x ref) ref {
	s := b.s
	z := s.right(x)
	y := s.left(z)
	by := s.tag(y)

	s.rotateRight(z)
	s.rotateLeft(x)

	switch {
	case by > 0:
		s.links[x].tag = -1
		s.links[z].tag = 0
	case by < 0:
		s.links[x].tag = 0
		s.links[z].tag = +1
	default:
		s.links[x].tag = 0
		s.links[z].tag = 0
	}
	s.links[y].tag = 0
	return y
}

// mirror of rotateRightLeft
func (b *avlBalancer) rotateLeftRight(x ref) ref {
	s := b.s
	z := s.left(x)
	y := s.right(z)
	by := s.tag(y)

	s.rotateLeft(z)
	s.rotateRight(x)

	switch {
	case by < 0:
		s.links[x].tag = +1
		s.links[z].tag = 0
	case by > 0:
		s.links[x].tag = 0
		s.links[z].tag = -1
	default:
		s.links[x].tag = 0
		s.links[z].tag = 0
	}
	s.links[y].tag = 0
	return y
}

// every stored tag must equal the measured height difference
func (b *avlBalancer) check() error {
	_, err := b.checkHeight(b.s.root)
	return err
}

func (b *avlBalancer) checkHeight(x ref) (int, error) {
	if nilRef == x {
		return -1, nil
	}
	hl, err := b.checkHeight(b.s.left(x))
	if nil != err {
		return 0, err
	}
	hr, err := b.checkHeight(b.s.right(x))
	if nil != err {
		return 0, err
	}
	d := hr - hl
	if d < -1 || d > 1 || int32(d) != b.s.tag(x) {
		return 0, fmt.Errorf("slot %d: tag %d  measured %d: %w", x, b.s.tag(x), d, fault.ErrAVLBalance)
	}
	return 1 + max(hl, hr), nil
}
