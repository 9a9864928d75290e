// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/searchtrees/fault"
	"github.com/bitmark-inc/searchtrees/searchtree"
	"github.com/bitmark-inc/searchtrees/workload"
)

// Configuration - what to run
type Configuration struct {
	StartValue int
	Interval   int
	Iterations int
	Repeats    int
	Seed       int64 // zero: derive from the clock
	Variants   []searchtree.Variant
	Tests      []Test
	Verify     bool // run the invariant checker after every mutating phase
}

// Validate - reject sizes and counts that cannot produce a run
func (c *Configuration) Validate() error {
	switch {
	case c.StartValue <= 0:
		return fault.ErrInvalidStartValue
	case c.Interval < 0:
		return fault.ErrInvalidInterval
	case c.Iterations <= 0:
		return fault.ErrInvalidIterations
	case c.Repeats <= 0:
		return fault.ErrInvalidRepeats
	}
	return nil
}

// Runner - holds one reusable tree per variant
type Runner struct {
	config Configuration
	log    *logger.L
	rng    *rand.Rand
	trees  map[searchtree.Variant]*benchTree
}

// New - create a runner, empty variant and test lists select all
func New(config Configuration) (*Runner, error) {
	if err := config.Validate(); nil != err {
		return nil, err
	}
	if 0 == len(config.Variants) {
		config.Variants = searchtree.Variants()
	}
	if 0 == len(config.Tests) {
		config.Tests = Tests
	}
	if 0 == config.Seed {
		config.Seed = time.Now().UnixNano()
	}

	log := logger.New("benchmark")
	log.Infof("start: %d  interval: %d  iterations: %d  repeats: %d", config.StartValue, config.Interval, config.Iterations, config.Repeats)
	log.Infof("seed: %d  variants: %v  verify: %t", config.Seed, config.Variants, config.Verify)

	r := &Runner{
		config: config,
		log:    log,
		rng:    rand.New(rand.NewSource(config.Seed)),
		trees:  make(map[searchtree.Variant]*benchTree),
	}
	for _, v := range config.Variants {
		r.trees[v] = searchtree.NewOrdered[int, struct{}](v)
	}
	return r, nil
}

// Run - every size, every test, repeated; results in run order
func (r *Runner) Run() ([]Result, error) {
	results := []Result{}
	for repeat := 0; repeat < r.config.Repeats; repeat += 1 {
		for i := 0; i < r.config.Iterations; i += 1 {
			n := r.config.StartValue + i*r.config.Interval
			r.log.Infof("repeat: %d  n: %d", repeat+1, n)
			sized, err := r.RunSize(n)
			if nil != err {
				r.log.Errorf("repeat: %d  n: %d  error: %s", repeat+1, n, err)
				return results, err
			}
			results = append(results, sized...)
		}
	}
	return results, nil
}

// RunSize - all selected tests for one tree size
func (r *Runner) RunSize(n int) ([]Result, error) {
	results := make([]Result, 0, len(r.config.Tests)*len(r.config.Variants))
	for _, test := range r.config.Tests {
		r.log.Debugf("test: %s  n: %d  generating data", test.Name, n)
		generator := workload.New(1, 10*n, r.rng.Int63())
		sets := generator.TestValues(n, test.Insert, test.Delete)

		for _, v := range r.config.Variants {
			if searchtree.Simple == v && !test.BST {
				continue
			}
			r.log.Debugf("test: %s  n: %d  tree: %s", test.Name, n, v)
			result, err := r.runTree(r.trees[v], test, n, sets)
			if nil != err {
				return results, err
			}
			results = append(results, result)
		}
	}
	return results, nil
}

func (r *Runner) runTree(tree *benchTree, test Test, n int, sets workload.Sets) (Result, error) {
	tree.Clear()
	p := phases{tree: tree, verify: r.config.Verify}
	result := Result{
		Tree: tree.Variant().String(),
		N:    n,
		Test: test.Name,
	}

	result.Insert1 = p.insert(sets.Insert1)
	result.Height1 = tree.Height()
	result.Search1a = p.search(sets.Search1)
	result.Search1b = p.search(sets.SearchAll)
	result.Delete1 = p.erase(sets.Delete1)
	result.Height2 = tree.Height()
	result.Search2a = p.search(sets.Search2)
	result.Search2b = p.search(sets.SearchAll)
	result.Insert2 = p.insert(sets.Insert2)
	result.Height3 = tree.Height()
	result.Search3a = p.search(sets.Search3)
	result.Search3b = p.search(sets.SearchAll)
	result.Delete2 = p.erase(sets.Delete2)
	result.Total = result.sum()

	if nil != p.err {
		return result, p.err
	}
	if 0 != tree.Size() {
		r.log.Warnf("%s: %d nodes left after test: %s", result.Tree, tree.Size(), test.Name)
	}
	return result, nil
}
