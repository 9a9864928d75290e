// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"math/rand"
	"sort"
)

// Generator - random integers in the closed range [min, max]
type Generator struct {
	min          int
	max          int
	permutations int // swaps applied for NearlyOrdered
	rng          *rand.Rand
}

// Sets - the data for one benchmark run
//
// given 2n distinct draws d: Insert1 = d[0:n], Delete1 = d[0:n/2],
// Insert2 = d[n:3n/2] and Delete2 = d[n/2:3n/2]; Search1, Search2 and
// Search3 draw with replacement from what the tree holds at that point
// while SearchAll draws from all of d, so d[3n/2:2n] are always misses
type Sets struct {
	Insert1   []int
	Insert2   []int
	Search1   []int
	Search2   []int
	Search3   []int
	SearchAll []int
	Delete1   []int
	Delete2   []int
}

// New - create a generator, a max below min is raised to min
func New(min int, max int, seed int64) *Generator {
	if max < min {
		max = min
	}
	g := &Generator{
		min: min,
		max: max,
		rng: rand.New(rand.NewSource(seed)),
	}
	g.permutations = g.Count() / 100
	return g
}

// Count - number of distinct values in the range
func (g *Generator) Count() int {
	return g.max - g.min + 1
}

// Values - up to n values from the range, without repeats if
// distinct is set
func (g *Generator) Values(n int, order Order, distinct bool) []int {
	n = min(n, g.Count())
	if n < 0 {
		n = 0
	}
	values := make([]int, 0, n)

	if distinct {
		used := make([]bool, g.Count())
		for len(values) < n {
			i := g.rng.Intn(g.Count())
			for used[i] {
				i = g.rng.Intn(g.Count())
			}
			used[i] = true
			values = append(values, g.min+i)
		}
	} else {
		for len(values) < n {
			values = append(values, g.min+g.rng.Intn(g.Count()))
		}
	}

	g.arrange(values, order)
	return values
}

// ValuesIn - up to n values taken from other
func (g *Generator) ValuesIn(n int, order Order, distinct bool, other []int) []int {
	reference := append([]int(nil), other...)
	return g.pick(n, order, distinct, reference)
}

// ValuesNotIn - up to n values from the range that do not occur in
// other
func (g *Generator) ValuesNotIn(n int, order Order, distinct bool, other []int) []int {
	exclude := make(map[int]struct{}, len(other))
	for _, v := range other {
		exclude[v] = struct{}{}
	}
	reference := make([]int, 0, g.Count())
	for v := g.min; v <= g.max; v += 1 {
		if _, ok := exclude[v]; !ok {
			reference = append(reference, v)
		}
	}
	return g.pick(n, order, distinct, reference)
}

// Permutate - swap random pairs of distinct positions, the number of
// swaps is a hundredth of the range size
func (g *Generator) Permutate(values []int) {
	if len(values) < 2 {
		return
	}
	for i := 0; i < g.permutations; i += 1 {
		k1 := g.rng.Intn(len(values))
		k2 := (k1 + 1 + g.rng.Intn(len(values)-1)) % len(values)
		values[k1], values[k2] = values[k2], values[k1]
	}
}

// TestValues - create the data sets for a run of size n
func (g *Generator) TestValues(n int, insertOrder Order, deleteOrder Order) Sets {
	values := g.Values(2*n, Uniform, true)
	n = min(n, len(values))
	half := n / 2
	upper := min(n+half, len(values))

	v1 := values[:n]
	v2 := values[:half]
	v3 := values[half:n]
	v4 := values[n:upper]
	v5 := values[half:upper]

	sets := Sets{
		Insert1:   append([]int(nil), v1...),
		Search1:   g.ValuesIn(10*n, Uniform, false, v1),
		Delete1:   append([]int(nil), v2...),
		Search2:   g.ValuesIn(10*n, Uniform, false, v3),
		Insert2:   append([]int(nil), v4...),
		Search3:   g.ValuesIn(10*n, Uniform, false, v5),
		Delete2:   append([]int(nil), v5...),
		SearchAll: g.ValuesIn(10*n, Uniform, false, values),
	}

	g.shuffle(sets.Insert1)
	g.shuffle(sets.Delete2)
	g.arrange(sets.Insert1, insertOrder)
	g.arrange(sets.Delete1, deleteOrder)
	return sets
}

// draw from reference, destroys reference
//
// with replacement the number of draws is limited to the reference
// size
func (g *Generator) pick(n int, order Order, distinct bool, reference []int) []int {
	n = min(n, len(reference))
	if n < 0 {
		n = 0
	}
	values := make([]int, 0, n)
	if distinct {
		for len(values) < n {
			i := g.rng.Intn(len(reference))
			values = append(values, reference[i])
			last := len(reference) - 1
			reference[i] = reference[last]
			reference = reference[:last]
		}
	} else {
		for len(values) < n {
			values = append(values, reference[g.rng.Intn(len(reference))])
		}
	}
	g.arrange(values, order)
	return values
}

func (g *Generator) shuffle(values []int) {
	g.rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}

// Uniform leaves the draw order alone
func (g *Generator) arrange(values []int, order Order) {
	switch order {
	case Ordered:
		sort.Ints(values)
	case NearlyOrdered:
		sort.Ints(values)
		g.Permutate(values)
	case Reversed:
		sort.Sort(sort.Reverse(sort.IntSlice(values)))
	}
}
