// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - key sequences for exercising search trees
//
// A Generator draws integers from a closed range [min, max] and can
// arrange them ascending, descending, ascending with a few random
// swaps or leave them in draw order.  TestValues builds the eight
// related data sets one benchmark run needs: every key inserted is
// new to the tree and every key deleted is present.
package workload
