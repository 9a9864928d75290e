// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

import (
	"fmt"

	"github.com/bitmark-inc/searchtrees/fault"
)

// Check - verify the structure: parent links, key order, node count
// and finally the variant's own balance rules
func (tree *Tree[K, V]) Check() error {
	s := &tree.skeleton
	if nilRef != s.root && nilRef != s.parent(s.root) {
		return fmt.Errorf("root slot %d has parent %d: %w", s.root, s.parent(s.root), fault.ErrRootParent)
	}

	n, err := tree.checkLinks()
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("reachable: %d  count: %d: %w", n, tree.count, fault.ErrCountMismatch)
	}

	previous := nilRef
	for x := s.minimum(s.root); nilRef != x; x = s.successor(x) {
		if nilRef != previous && tree.compare(tree.keys[previous], tree.keys[x]) >= 0 {
			return fmt.Errorf("key: %v  follows: %v: %w", tree.keys[x], tree.keys[previous], fault.ErrOrderViolation)
		}
		previous = x
	}

	return tree.balancer.check()
}

// internal: each reachable child points back to its parent, returns
// the number of reachable nodes
func (tree *Tree[K, V]) checkLinks() (int, error) {
	s := &tree.skeleton
	if nilRef == s.root {
		return 0, nil
	}
	n := 0
	stack := []ref{s.root}
	for 0 != len(stack) {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.links[x].free {
			return n, fmt.Errorf("slot %d is reachable but released: %w", x, fault.ErrParentLink)
		}
		n += 1
		if n > len(s.links) {
			return n, fmt.Errorf("cycle through slot %d: %w", x, fault.ErrParentLink)
		}

		for _, child := range []ref{s.left(x), s.right(x)} {
			if nilRef == child {
				continue
			}
			if x != s.parent(child) {
				return n, fmt.Errorf("slot %d  actual parent: %d  expected: %d: %w", child, s.parent(child), x, fault.ErrParentLink)
			}
			stack = append(stack, child)
		}
	}
	return n, nil
}
