// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

import (
	"cmp"
)

// Tree - an ordered key/value container balanced by its variant
type Tree[K any, V any] struct {
	skeleton
	keys     []K
	values   []V
	free     ref // head of released slot list
	count    int
	compare  func(a, b K) int
	variant  Variant
	balancer balancer
}

// New - create an initially empty tree, compare returns a negative
// number, zero or a positive number as a is less, equal to or
// greater than b
func New[K any, V any](variant Variant, compare func(a, b K) int) *Tree[K, V] {
	tree := &Tree[K, V]{
		skeleton: skeleton{
			links: make([]link, 1), // slot zero is the sentinel
			root:  nilRef,
		},
		keys:    make([]K, 1),
		values:  make([]V, 1),
		free:    nilRef,
		count:   0,
		compare: compare,
		variant: variant,
	}
	tree.balancer = variant.balancer(&tree.skeleton)
	return tree
}

// NewOrdered - create an empty tree for naturally ordered keys
func NewOrdered[K cmp.Ordered, V any](variant Variant) *Tree[K, V] {
	return New[K, V](variant, cmp.Compare[K])
}

// Variant - the balancing policy of this tree
func (tree *Tree[K, V]) Variant() Variant {
	return tree.variant
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nilRef == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[K, V]) Size() int {
	return tree.count
}

// Height - edges on the longest root to leaf path, -1 if empty
func (tree *Tree[K, V]) Height() int {
	return tree.height(tree.root)
}

// Clear - release every node, all outstanding handles become stale
//
// the arena keeps its capacity for the next fill
func (tree *Tree[K, V]) Clear() {
	var zeroKey K
	var zeroValue V
	tree.free = nilRef
	for i := len(tree.links) - 1; i > 0; i -= 1 {
		l := &tree.links[i]
		generation := l.generation
		if !l.free {
			generation += 1
		}
		*l = link{
			parent:     tree.free,
			generation: generation,
			free:       true,
		}
		tree.keys[i] = zeroKey
		tree.values[i] = zeroValue
		tree.free = ref(i)
	}
	tree.root = nilRef
	tree.count = 0
}

// allocate a new node, reuses released slots if any are available
func (tree *Tree[K, V]) allocate(key K, value V) ref {
	x := tree.free
	if nilRef == x {
		x = ref(len(tree.links))
		tree.links = append(tree.links, link{})
		tree.keys = append(tree.keys, key)
		tree.values = append(tree.values, value)
	} else {
		if !tree.links[x].free {
			panic("arena free list corrupt")
		}
		tree.free = tree.links[x].parent
		tree.keys[x] = key
		tree.values[x] = value
	}
	tree.links[x] = link{
		parent:     nilRef,
		left:       nilRef,
		right:      nilRef,
		tag:        tree.balancer.defaultTag(),
		generation: tree.links[x].generation,
	}
	return x
}

// reclaim a detached node's slot and keep it on the free list
func (tree *Tree[K, V]) release(x ref) {
	var zeroKey K
	var zeroValue V
	tree.keys[x] = zeroKey
	tree.values[x] = zeroValue
	tree.links[x] = link{
		parent:     tree.free, // use as free list pointer
		generation: tree.links[x].generation + 1,
		free:       true,
	}
	tree.free = x
}
