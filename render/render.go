// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package render - draw a small tree top down from its level order
// snapshot
//
// Each level is a row of keys three characters wide with the links
// to the level above on the row before:
//
//	    2
//	  / \
//	  1   3
//
// Highlighted nodes (red nodes of a Red-Black tree, AA nodes on the
// same level as their parent) are drawn in red when colour is on.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"

	"github.com/bitmark-inc/searchtrees/searchtree"
	"github.com/bitmark-inc/searchtrees/util"
)

const (
	nodeWidth = 3
	nodeSpace = 1
)

// Output - standard output wrapped so that escape sequences work on
// every platform, and whether it is a terminal
func Output() (io.Writer, bool) {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return colorable.NewColorableStdout(), true
	}
	return colorable.NewNonColorable(os.Stdout), false
}

// Print - draw the snapshot, nothing is written for an empty tree
func Print[K any](w io.Writer, slots []searchtree.Slot[K], colour bool) {
	h := levels(len(slots)) - 1
	for level := 0; level <= h; level += 1 {
		row := slots[1<<level-1 : 1<<(level+1)-1]
		indent := (nodeWidth + nodeSpace) / 2 * (1<<(h-level) - 1)

		if level > 0 {
			cells := make([]string, len(row))
			for i, slot := range row {
				switch {
				case !slot.Present:
					cells[i] = strings.Repeat(" ", nodeWidth)
				case 0 == i%2:
					cells[i] = fmt.Sprintf("%*s", nodeWidth, "/")
				default:
					cells[i] = fmt.Sprintf("%-*s", nodeWidth, "\\")
				}
			}
			printRow(w, cells, indent)
		}

		cells := make([]string, len(row))
		for i, slot := range row {
			if !slot.Present {
				cells[i] = strings.Repeat(" ", nodeWidth)
				continue
			}
			cells[i] = fmt.Sprintf("%*v", nodeWidth, slot.Key)
			if colour && slot.Highlight {
				cells[i] = util.CoRed + cells[i] + util.CoReset
			}
		}
		printRow(w, cells, indent)
	}
}

// number of complete levels in a layout of n slots
func levels(n int) int {
	l := 0
	for 1<<(l+1)-1 <= n {
		l += 1
	}
	return l
}

func printRow(w io.Writer, cells []string, indent int) {
	pad := strings.Repeat(" ", indent)
	b := strings.Builder{}
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", nodeSpace))
		}
		b.WriteString(pad)
		b.WriteString(cell)
		if i+1 < len(cells) {
			b.WriteString(pad)
		}
	}
	fmt.Fprintln(w, b.String())
}
