// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package searchtree - ordered key/value containers built on one
// binary search tree skeleton with parent links, balanced by a
// selectable policy: none (plain BST), AVL, Red-Black or AA.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes live in an arena owned by the tree and are addressed by
// index, so the parent/child links form no pointer cycles.  Slot
// zero of the arena is a read-only "nil" sentinel: its links are all
// nil and its balance tag is zero, which reads as colour Black and
// AA level 0.  Released slots are chained into a free list and
// reused by later inserts.
//
// A Handle returned by Find, Minimum etc. stays valid until its node
// is erased; using it afterwards panics with fault.ErrStaleHandle.
package searchtree
