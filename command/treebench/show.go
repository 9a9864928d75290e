// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/searchtrees/fault"
	"github.com/bitmark-inc/searchtrees/render"
	"github.com/bitmark-inc/searchtrees/searchtree"
)

// wider trees do not fit a terminal
const maximumShowSize = 63

// parse "VARIANT:N"
func parseShow(s string) (searchtree.Variant, int, error) {
	parts := strings.Split(s, ":")
	if 2 != len(parts) {
		return searchtree.Simple, 0, fault.ErrInvalidShowOption
	}
	variant, err := searchtree.ParseVariant(parts[0])
	if nil != err {
		return searchtree.Simple, 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if nil != err || n < 1 || n > maximumShowSize {
		return searchtree.Simple, 0, fault.ErrInvalidShowOption
	}
	return variant, n, nil
}

// insert 1..N in random order and draw the result
func showTree(log *logger.L, s string, seed int64) error {
	variant, n, err := parseShow(s)
	if nil != err {
		return err
	}
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	log.Infof("show: %s  n: %d  seed: %d", variant, n, seed)

	tree := searchtree.NewOrdered[int, struct{}](variant)
	for _, k := range rand.New(rand.NewSource(seed)).Perm(n) {
		tree.Insert(k+1, struct{}{})
	}
	if err := tree.Check(); nil != err {
		log.Errorf("show: %s  check error: %s", variant, err)
		return err
	}

	w, colour := render.Output()
	fmt.Fprintf(w, "%s  size: %d  height: %d\n", variant, tree.Size(), tree.Height())
	render.Print(w, tree.Snapshot(), colour)
	fmt.Fprintln(w)
	return nil
}
