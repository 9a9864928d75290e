// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAALevel              = InvariantError("AA level rule broken")
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrAVLBalance           = InvariantError("AVL balance factor out of range or incorrect")
	ErrBlackHeight          = InvariantError("unequal black height")
	ErrConfigurationFile    = NotFoundError("configuration file not found")
	ErrCountMismatch        = InvariantError("node count does not match tree size")
	ErrDuplicateKey         = ExistsError("duplicate key")
	ErrInvalidInterval      = InvalidError("interval is invalid")
	ErrInvalidIterations    = InvalidError("iterations is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidRepeats       = InvalidError("repeats is invalid")
	ErrInvalidShowOption    = InvalidError("show option must be VARIANT:N")
	ErrInvalidStartValue    = InvalidError("start value is invalid")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrMissingTestName      = InvalidError("custom test has no name")
	ErrNotATable            = InvalidError("configuration did not return a table")
	ErrOrderViolation       = InvariantError("keys not in strictly increasing order")
	ErrParentLink           = InvariantError("parent link inconsistent")
	ErrRedRed               = InvariantError("red node has a red parent")
	ErrRedRoot              = InvariantError("root is red")
	ErrRootParent           = InvariantError("root has a parent")
	ErrStaleHandle          = InvalidError("handle does not refer to a node in the tree")
	ErrUnknownFormat        = NotFoundError("unknown output format")
	ErrUnknownOrder         = NotFoundError("unknown key order")
	ErrUnknownTest          = NotFoundError("unknown test name")
	ErrUnknownVariant       = NotFoundError("unknown tree variant")
	ErrWrongArgumentCount   = InvalidError("wrong number of arguments")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool    { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool   { var t InvalidError; return errors.As(e, &t) }
func IsErrInvariant(e error) bool { var t InvariantError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool  { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool   { var t ProcessError; return errors.As(e, &t) }
