// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"strings"

	"github.com/bitmark-inc/searchtrees/fault"
	"github.com/bitmark-inc/searchtrees/workload"
)

// Test - one combination of insert and delete orders
type Test struct {
	Name   string
	BST    bool // also run the plain binary search tree
	Insert workload.Order
	Delete workload.Order
}

// Tests - the standard test list
var Tests = []Test{
	{Name: "A", BST: false, Insert: workload.Ordered, Delete: workload.Ordered},
	{Name: "B", BST: true, Insert: workload.NearlyOrdered, Delete: workload.Uniform},
	{Name: "C", BST: true, Insert: workload.Uniform, Delete: workload.Ordered},
	{Name: "D", BST: false, Insert: workload.Ordered, Delete: workload.Uniform},
	{Name: "E", BST: true, Insert: workload.NearlyOrdered, Delete: workload.Ordered},
	{Name: "F", BST: true, Insert: workload.Uniform, Delete: workload.Uniform},
}

// LookupTests - select tests by name, an empty list selects all of
// them
func LookupTests(names []string) ([]Test, error) {
	if 0 == len(names) {
		return Tests, nil
	}
	selected := make([]Test, 0, len(names))
loop:
	for _, name := range names {
		for _, test := range Tests {
			if strings.EqualFold(test.Name, strings.TrimSpace(name)) {
				selected = append(selected, test)
				continue loop
			}
		}
		return nil, fault.ErrUnknownTest
	}
	return selected, nil
}
