// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/searchtrees/fault"
	"github.com/bitmark-inc/searchtrees/searchtree"
)

type benchTree = searchtree.Tree[int, struct{}]

// phases - runs the timed steps against one tree; the first failure
// sticks and every later step becomes a no-op
type phases struct {
	tree   *benchTree
	verify bool
	err    error
}

func (p *phases) insert(values []int) time.Duration {
	if nil != p.err {
		return 0
	}
	start := time.Now()
	for _, v := range values {
		if !p.tree.Insert(v, struct{}{}) {
			p.err = fmt.Errorf("%s insert: %d: %w", p.tree.Variant(), v, fault.ErrDuplicateKey)
			break
		}
	}
	elapsed := time.Since(start)
	p.check("insert")
	return elapsed
}

func (p *phases) search(values []int) time.Duration {
	if nil != p.err {
		return 0
	}
	start := time.Now()
	for _, v := range values {
		p.tree.Find(v)
	}
	return time.Since(start)
}

func (p *phases) erase(values []int) time.Duration {
	if nil != p.err {
		return 0
	}
	start := time.Now()
	for _, v := range values {
		if 0 == p.tree.Erase(v) {
			p.err = fmt.Errorf("%s erase: %d: %w", p.tree.Variant(), v, fault.ErrKeyNotFound)
			break
		}
	}
	elapsed := time.Since(start)
	p.check("erase")
	return elapsed
}

// outside the timed region
func (p *phases) check(phase string) {
	if nil != p.err || !p.verify {
		return
	}
	if err := p.tree.Check(); nil != err {
		p.err = fmt.Errorf("%s after %s: %w", p.tree.Variant(), phase, err)
	}
}
