// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

import (
	"fmt"

	"github.com/bitmark-inc/searchtrees/fault"
)

// AA balance tag: level, leaves are 1 and the nil sentinel is 0
//
// a link between two nodes of the same level is "horizontal"; only
// single right horizontal links are allowed
type aaBalancer struct {
	s *skeleton
}

func (b *aaBalancer) level(x ref) int32 { return b.s.tag(x) }

func (b *aaBalancer) defaultTag() int32 { return 1 }

func (b *aaBalancer) afterFind(ref) {}

// skew then split every node on the path back to the root
func (b *aaBalancer) afterInsert(x ref) {
	s := b.s
	for p := s.parent(x); nilRef != p; p = s.parent(p) {
		p = b.skew(p)
		p = b.split(p)
	}
}

// on the way up: lower levels that are too high for the children
// left behind, then re-normalise the node, its right child and its
// right-right grandchild
func (b *aaBalancer) afterErase(r removal) {
	s := b.s
	for p := r.parent; nilRef != p; p = s.parent(p) {
		b.decreaseLevel(p)
		p = b.skew(p)
		b.skew(s.right(p))
		if right := s.right(p); nilRef != right {
			b.skew(s.right(right))
		}
		p = b.split(p)
		b.split(s.right(p))
	}
}

// remove a left horizontal link, returns the sub-tree root
func (b *aaBalancer) skew(x ref) ref {
	if nilRef == x {
		return x
	}
	l := b.s.left(x)
	if nilRef == l || b.level(l) != b.level(x) {
		return x
	}
	return b.s.rotateRight(x)
}

// remove two consecutive right horizontal links, returns the
// sub-tree root
func (b *aaBalancer) split(x ref) ref {
	if nilRef == x {
		return x
	}
	r := b.s.right(x)
	if nilRef == r || nilRef == b.s.right(r) || b.level(b.s.right(r)) != b.level(x) {
		return x
	}
	b.s.rotateLeft(x)
	b.s.links[r].tag += 1
	return r
}

// a node may be at most one level above its lower child; a right
// horizontal child is lowered with it
func (b *aaBalancer) decreaseLevel(x ref) {
	s := b.s
	should := min(b.level(s.left(x)), b.level(s.right(x))) + 1
	if should < b.level(x) {
		s.links[x].tag = should
		if r := s.right(x); nilRef != r && should < b.level(r) {
			s.links[r].tag = should
		}
	}
}

func (b *aaBalancer) check() error {
	return b.checkLevels(b.s.root)
}

func (b *aaBalancer) checkLevels(x ref) error {
	if nilRef == x {
		return nil
	}
	s := b.s
	lv := b.level(x)
	l, r := s.left(x), s.right(x)
	switch {
	case nilRef == l && nilRef == r && 1 != lv:
		return fmt.Errorf("slot %d: leaf level %d: %w", x, lv, fault.ErrAALevel)
	case lv > 1 && (nilRef == l || nilRef == r):
		return fmt.Errorf("slot %d: level %d with a missing child: %w", x, lv, fault.ErrAALevel)
	case b.level(l) >= lv:
		return fmt.Errorf("slot %d: left horizontal link: %w", x, fault.ErrAALevel)
	case b.level(r) > lv:
		return fmt.Errorf("slot %d: right child above parent: %w", x, fault.ErrAALevel)
	case nilRef != r && b.level(s.right(r)) >= lv:
		return fmt.Errorf("slot %d: double right horizontal link: %w", x, fault.ErrAALevel)
	}
	if err := b.checkLevels(l); nil != err {
		return err
	}
	return b.checkLevels(r)
}
