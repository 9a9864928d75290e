// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"time"
)

// Result - heights and phase durations of one variant on one test
type Result struct {
	Tree     string
	N        int
	Test     string
	Height1  int
	Height2  int
	Height3  int
	Insert1  time.Duration
	Search1a time.Duration
	Search1b time.Duration
	Delete1  time.Duration
	Search2a time.Duration
	Search2b time.Duration
	Insert2  time.Duration
	Search3a time.Duration
	Search3b time.Duration
	Delete2  time.Duration
	Total    time.Duration
}

func (r *Result) sum() time.Duration {
	return r.Insert1 + r.Insert2 +
		r.Delete1 + r.Delete2 +
		r.Search1a + r.Search2a + r.Search3a +
		r.Search1b + r.Search2b + r.Search3b
}

func (r *Result) add(other *Result) {
	r.Height1 += other.Height1
	r.Height2 += other.Height2
	r.Height3 += other.Height3
	r.Insert1 += other.Insert1
	r.Search1a += other.Search1a
	r.Search1b += other.Search1b
	r.Delete1 += other.Delete1
	r.Search2a += other.Search2a
	r.Search2b += other.Search2b
	r.Insert2 += other.Insert2
	r.Search3a += other.Search3a
	r.Search3b += other.Search3b
	r.Delete2 += other.Delete2
	r.Total += other.Total
}

func (r *Result) divide(count int) {
	d := time.Duration(count)
	r.Height1 /= count
	r.Height2 /= count
	r.Height3 /= count
	r.Insert1 /= d
	r.Search1a /= d
	r.Search1b /= d
	r.Delete1 /= d
	r.Search2a /= d
	r.Search2b /= d
	r.Insert2 /= d
	r.Search3a /= d
	r.Search3b /= d
	r.Delete2 /= d
	r.Total /= d
}

// Averages - one result per (tree, test, n) in order of first
// appearance, every numeric field averaged
func Averages(results []Result) []Result {
	type group struct {
		tree string
		test string
		n    int
	}

	index := make(map[group]int)
	counts := []int{}
	averages := []Result{}

	for i := range results {
		r := &results[i]
		g := group{tree: r.Tree, test: r.Test, n: r.N}
		j, ok := index[g]
		if !ok {
			j = len(averages)
			index[g] = j
			averages = append(averages, Result{Tree: r.Tree, N: r.N, Test: r.Test})
			counts = append(counts, 0)
		}
		averages[j].add(r)
		counts[j] += 1
	}

	for i := range averages {
		averages[i].divide(counts[i])
	}
	return averages
}
