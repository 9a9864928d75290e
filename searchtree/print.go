// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package searchtree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print - display an ASCII graphic representation of the tree,
// returns the number of levels
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root, "", rootBranch, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[K, V]) printTree(w io.Writer, x ref, prefix string, br branch, printData bool) int {
	if nilRef == x {
		return 0
	}
	s := &tree.skeleton
	rd := 0
	ld := 0
	if nilRef != s.right(x) {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, s.right(x), prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := "-"
	if p := s.parent(x); nilRef != p {
		up = fmt.Sprint(tree.keys[p])
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%s %+d\n", tree.keys[x], tree.values[x], up, s.tag(x))
	} else {
		fmt.Fprintf(w, "%v ^%s\n", tree.keys[x], up)
	}
	if nilRef != s.left(x) {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, s.left(x), prefix+t, leftBranch, printData)
	}
	return 1 + max(ld, rd)
}
