// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

import (
	"strings"

	"github.com/bitmark-inc/searchtrees/fault"
)

// balancer - rebalancing policy bound to one tree's skeleton
//
// afterInsert receives the freshly linked node; afterErase receives
// a description of the splice that removed a node.
type balancer interface {
	defaultTag() int32
	afterFind(x ref)
	afterInsert(x ref)
	afterErase(r removal)
	check() error
}

// removal - what the container's structural delete left behind
type removal struct {
	replacement ref   // node now in the vacated position, may be nil
	parent      ref   // parent of that position, nil if it is the root
	leftShrank  bool  // the vacated position is parent's left child
	removedTag  int32 // tag of the node that physically left its position
}

// Variant - selects the balancing policy of a tree
type Variant int

// the supported variants
const (
	Simple Variant = iota
	AVL
	RedBlack
	AA
)

var variantNames = map[Variant]string{
	Simple:   "BST",
	AVL:      "AVL",
	RedBlack: "RBT",
	AA:       "AA",
}

// Variants - all variants in benchmark order
func Variants() []Variant {
	return []Variant{RedBlack, AVL, AA, Simple}
}

// String - short name as used in reports
func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return "*Unknown*"
}

// ParseVariant - accept short names and a few long forms, any case
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bst", "simple", "plain":
		return Simple, nil
	case "avl":
		return AVL, nil
	case "rbt", "rb", "redblack", "red-black":
		return RedBlack, nil
	case "aa":
		return AA, nil
	}
	return Simple, fault.ErrUnknownVariant
}

func (v Variant) balancer(s *skeleton) balancer {
	switch v {
	case Simple:
		return simpleBalancer{}
	case AVL:
		return &avlBalancer{s: s}
	case RedBlack:
		return &redBlackBalancer{s: s}
	case AA:
		return &aaBalancer{s: s}
	}
	panic(fault.ErrUnknownVariant)
}

// plain binary search tree: nothing to do
type simpleBalancer struct{}

func (simpleBalancer) defaultTag() int32  { return 0 }
func (simpleBalancer) afterFind(ref)      {}
func (simpleBalancer) afterInsert(ref)    {}
func (simpleBalancer) afterErase(removal) {}
func (simpleBalancer) check() error       { return nil }
