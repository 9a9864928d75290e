// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/searchtrees/fault"
	"github.com/bitmark-inc/searchtrees/workload"
)

func set(values []int) map[int]struct{} {
	m := make(map[int]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func TestOrderNames(t *testing.T) {
	for _, o := range []workload.Order{workload.Ordered, workload.Reversed, workload.NearlyOrdered, workload.Uniform} {
		p, err := workload.ParseOrder(o.String())
		assert.NoError(t, err, "parse: %s", o)
		assert.Equal(t, o, p, "parse: %s", o)
	}
	_, err := workload.ParseOrder("sideways")
	assert.Equal(t, fault.ErrUnknownOrder, err, "unknown")
	assert.Equal(t, "*Unknown*", workload.Order(-1).String(), "negative")
}

func TestNewClampsRange(t *testing.T) {
	g := workload.New(10, 5, 1)
	assert.Equal(t, 1, g.Count(), "count")
	assert.Equal(t, []int{10}, g.Values(3, workload.Uniform, true), "single value")
}

func TestDistinctValues(t *testing.T) {
	g := workload.New(1, 100, 7)

	values := g.Values(60, workload.Uniform, true)
	require.Len(t, values, 60, "count")
	assert.Len(t, set(values), 60, "repeats")
	for _, v := range values {
		assert.True(t, v >= 1 && v <= 100, "out of range: %d", v)
	}

	all := g.Values(500, workload.Ordered, true)
	require.Len(t, all, 100, "limited to range")
	for i, v := range all {
		assert.Equal(t, i+1, v, "position: %d", i)
	}
}

func TestOrders(t *testing.T) {
	g := workload.New(1, 10000, 3)

	ordered := g.Values(1000, workload.Ordered, true)
	assert.True(t, sort.IntsAreSorted(ordered), "ordered")

	reversed := g.Values(1000, workload.Reversed, true)
	assert.True(t, sort.SliceIsSorted(reversed, func(i, j int) bool { return reversed[i] > reversed[j] }), "reversed")

	// a hundredth of the range in swaps touches at most 200 positions
	nearly := g.Values(1000, workload.NearlyOrdered, true)
	sorted := append([]int(nil), nearly...)
	sort.Ints(sorted)
	moved := 0
	for i := range nearly {
		if nearly[i] != sorted[i] {
			moved += 1
		}
	}
	assert.NotZero(t, moved, "nothing permutated")
	assert.LessOrEqual(t, moved, 200, "too many moved")
}

func TestPermutateKeepsValues(t *testing.T) {
	g := workload.New(1, 1000, 5)
	values := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	g.Permutate(values)
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, sorted, "values lost")

	single := []int{42}
	g.Permutate(single)
	assert.Equal(t, []int{42}, single, "single value")
}

func TestValuesInAndNotIn(t *testing.T) {
	g := workload.New(1, 50, 9)
	source := []int{2, 4, 6, 8, 10}

	in := g.ValuesIn(100, workload.Uniform, false, source)
	assert.Len(t, in, len(source), "with replacement is capped")
	for _, v := range in {
		assert.Contains(t, source, v, "foreign value")
	}

	distinct := g.ValuesIn(3, workload.Ordered, true, source)
	assert.Len(t, set(distinct), 3, "repeats")
	assert.True(t, sort.IntsAreSorted(distinct), "ordered")
	assert.Equal(t, []int{2, 4, 6, 8, 10}, source, "source modified")

	out := g.ValuesNotIn(100, workload.Ordered, true, source)
	assert.Len(t, out, 45, "complement size")
	excluded := set(source)
	for _, v := range out {
		_, found := excluded[v]
		assert.False(t, found, "excluded value: %d", v)
	}
}

func TestSameSeedSameValues(t *testing.T) {
	a := workload.New(1, 1000, 77).TestValues(100, workload.NearlyOrdered, workload.Uniform)
	b := workload.New(1, 1000, 77).TestValues(100, workload.NearlyOrdered, workload.Uniform)
	assert.Equal(t, a, b, "not reproducible")
}

func TestTestValues(t *testing.T) {
	const n = 200
	g := workload.New(1, 10*n, 13)
	sets := g.TestValues(n, workload.Ordered, workload.Ordered)

	require.Len(t, sets.Insert1, n, "insert1")
	require.Len(t, sets.Delete1, n/2, "delete1")
	require.Len(t, sets.Insert2, n/2, "insert2")
	require.Len(t, sets.Delete2, n, "delete2")
	assert.True(t, sort.IntsAreSorted(sets.Insert1), "insert1 order")
	assert.True(t, sort.IntsAreSorted(sets.Delete1), "delete1 order")

	// replay against a set: every insert is new, every delete present
	live := map[int]struct{}{}
	for _, v := range sets.Insert1 {
		_, found := live[v]
		require.False(t, found, "insert1 repeat: %d", v)
		live[v] = struct{}{}
	}
	for _, v := range sets.Search1 {
		assert.Contains(t, live, v, "search1")
	}
	for _, v := range sets.Delete1 {
		_, found := live[v]
		require.True(t, found, "delete1 missing: %d", v)
		delete(live, v)
	}
	for _, v := range sets.Search2 {
		assert.Contains(t, live, v, "search2")
	}
	for _, v := range sets.Insert2 {
		_, found := live[v]
		require.False(t, found, "insert2 repeat: %d", v)
		live[v] = struct{}{}
	}
	for _, v := range sets.Search3 {
		assert.Contains(t, live, v, "search3")
	}
	for _, v := range sets.Delete2 {
		_, found := live[v]
		require.True(t, found, "delete2 missing: %d", v)
		delete(live, v)
	}
	assert.Empty(t, live, "values left over")

	// search all mixes hits with values that were never inserted
	inserted := set(append(append([]int(nil), sets.Insert1...), sets.Insert2...))
	distinct := set(sets.SearchAll)
	assert.True(t, len(distinct) <= 2*n, "search all distinct: %d", len(distinct))
	hits := 0
	for v := range distinct {
		require.True(t, v >= 1 && v <= 10*n, "search all out of range: %d", v)
		if _, ok := inserted[v]; ok {
			hits += 1
		}
	}
	misses := len(distinct) - hits
	assert.True(t, hits > 0, "search all has no hits")
	assert.True(t, misses > 0, "search all has no misses")
	assert.True(t, misses <= n-n/2, "search all misses: %d", misses)
}

func TestTestValuesTinySizes(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		g := workload.New(1, 10*max(n, 1), 1)
		sets := g.TestValues(n, workload.Uniform, workload.Uniform)
		assert.Len(t, sets.Insert1, n, "n: %d", n)
		assert.Len(t, sets.Delete1, n/2, "n: %d", n)
		assert.Len(t, sets.Delete2, n, "n: %d", n)
	}
}
