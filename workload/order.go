// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"strings"

	"github.com/bitmark-inc/searchtrees/fault"
)

// Order - arrangement of a generated sequence
type Order int

// possible orders
const (
	Ordered Order = iota
	Reversed
	NearlyOrdered
	Uniform
)

var orderNames = []string{
	Ordered:       "ordered",
	Reversed:      "reversed",
	NearlyOrdered: "nearlyOrdered",
	Uniform:       "uniform",
}

// String - name of the order
func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return "*Unknown*"
	}
	return orderNames[o]
}

// ParseOrder - convert a name to an order, case is ignored
func ParseOrder(s string) (Order, error) {
	for i, name := range orderNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Order(i), nil
		}
	}
	return Uniform, fault.ErrUnknownOrder
}
