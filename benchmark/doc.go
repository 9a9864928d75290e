// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package benchmark - timed insert/search/delete runs over every
// tree variant
//
// For each tree size n and each selected test the same generated
// data is fed to every selected variant in the phase order:
//
//	clear, insert1, height1, search1 (search1 and all), delete1,
//	height2, search2 (search2 and all), insert2, height3,
//	search3 (search3 and all), delete2
//
// The plain binary search tree is skipped for the tests whose insert
// order would make it degenerate.
package benchmark
