// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

import (
	"fmt"

	"github.com/bitmark-inc/searchtrees/fault"
)

// Color - Red-Black balance tag, the zero value (and so the nil
// sentinel) is Black
type Color int32

// the two colours
const (
	Black Color = iota
	Red
)

// String - colour name
func (c Color) String() string {
	if Red == c {
		return "Red"
	}
	return "Black"
}

type redBlackBalancer struct {
	s *skeleton
}

func (b *redBlackBalancer) color(x ref) Color { return Color(b.s.tag(x)) }
func (b *redBlackBalancer) isRed(x ref) bool  { return Red == b.color(x) }

func (b *redBlackBalancer) setColor(x ref, c Color) { b.s.setTag(x, int32(c)) }

func (b *redBlackBalancer) defaultTag() int32 { return int32(Red) }

func (b *redBlackBalancer) afterFind(ref) {}

// new nodes are red; climb while a red node has a red parent
func (b *redBlackBalancer) afterInsert(x ref) {
	s := b.s
	for b.isRed(s.parent(x)) {
		p := s.parent(x)
		g := s.parent(p)
		if p == s.left(g) {
			uncle := s.right(g)
			if b.isRed(uncle) {
				b.setColor(p, Black)
				b.setColor(uncle, Black)
				b.setColor(g, Red)
				x = g
				continue
			}
			if x == s.right(p) {
				x = p
				s.rotateLeft(x)
				p = s.parent(x)
			}
			b.setColor(p, Black)
			b.setColor(g, Red)
			s.rotateRight(g)
		} else {
			uncle := s.left(g)
			if b.isRed(uncle) {
				b.setColor(p, Black)
				b.setColor(uncle, Black)
				b.setColor(g, Red)
				x = g
				continue
			}
			if x == s.left(p) {
				x = p
				s.rotateRight(x)
				p = s.parent(x)
			}
			b.setColor(p, Black)
			b.setColor(g, Red)
			s.rotateLeft(g)
		}
	}
	b.setColor(s.root, Black)
}

// only removing a black node disturbs the black heights; the
// vacated position carries an extra black which is pushed up or
// absorbed by rotation
func (b *redBlackBalancer) afterErase(r removal) {
	if Black != Color(r.removedTag) {
		return
	}
	s := b.s
	x := r.replacement
	p := r.parent
	onLeft := r.leftShrank

	for x != s.root && !b.isRed(x) {
		if onLeft {
			w := s.right(p)
			if b.isRed(w) {
				b.setColor(w, Black)
				b.setColor(p, Red)
				s.rotateLeft(p)
				w = s.right(p)
			}
			if !b.isRed(s.left(w)) && !b.isRed(s.right(w)) {
				b.setColor(w, Red)
				x = p
				p = s.parent(x)
				onLeft = nilRef != p && x == s.left(p)
				continue
			}
			if !b.isRed(s.right(w)) {
				b.setColor(s.left(w), Black)
				b.setColor(w, Red)
				s.rotateRight(w)
				w = s.right(p)
			}
			b.setColor(w, b.color(p))
			b.setColor(p, Black)
			b.setColor(s.right(w), Black)
			s.rotateLeft(p)
		} else {
			w := s.left(p)
			if b.isRed(w) {
				b.setColor(w, Black)
				b.setColor(p, Red)
				s.rotateRight(p)
				w = s.left(p)
			}
			if !b.isRed(s.left(w)) && !b.isRed(s.right(w)) {
				b.setColor(w, Red)
				x = p
				p = s.parent(x)
				onLeft = nilRef != p && x == s.left(p)
				continue
			}
			if !b.isRed(s.left(w)) {
				b.setColor(s.right(w), Black)
				b.setColor(w, Red)
				s.rotateLeft(w)
				w = s.left(p)
			}
			b.setColor(w, b.color(p))
			b.setColor(p, Black)
			b.setColor(s.left(w), Black)
			s.rotateRight(p)
		}
		x = s.root
	}
	b.setColor(x, Black)
}

// black root, no red-red edge, equal black height on every path
func (b *redBlackBalancer) check() error {
	if b.isRed(b.s.root) {
		return fault.ErrRedRoot
	}
	_, err := b.blackHeight(b.s.root)
	return err
}

func (b *redBlackBalancer) blackHeight(x ref) (int, error) {
	if nilRef == x {
		return 1, nil
	}
	l, r := b.s.left(x), b.s.right(x)
	if b.isRed(x) && (b.isRed(l) || b.isRed(r)) {
		return 0, fmt.Errorf("slot %d: %w", x, fault.ErrRedRed)
	}
	hl, err := b.blackHeight(l)
	if nil != err {
		return 0, err
	}
	hr, err := b.blackHeight(r)
	if nil != err {
		return 0, err
	}
	if hl != hr {
		return 0, fmt.Errorf("slot %d: left %d  right %d: %w", x, hl, hr, fault.ErrBlackHeight)
	}
	if b.isRed(x) {
		return hl, nil
	}
	return hl + 1, nil
}
