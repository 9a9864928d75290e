// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// ANSI escape sequences for terminal output
const (
	CoReset = "\x1b[0m"
	CoRed   = "\x1b[31m"
)
