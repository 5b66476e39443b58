// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type CorruptError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// registry errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrAssetNotFound           = NotFoundError("asset not found")
	ErrAssetNotInInventory     = NotFoundError("asset not in owner inventory")
	ErrBalanceOverflow         = LimitError("balance overflow")
	ErrBelowExistentialDeposit = InvalidError("resulting balance below existential deposit")
	ErrCapacityExceeded        = LimitError("owner inventory at maximum capacity")
	ErrDatabaseIsNotSet        = ProcessError("database is not set")
	ErrDuplicateAsset          = ExistsError("duplicate asset")
	ErrInsufficientFunds       = InvalidError("insufficient funds")
	ErrInvalidAccount          = InvalidError("invalid account")
	ErrInvalidAssetRecord      = CorruptError("invalid asset record")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidHeaderRecord     = CorruptError("invalid block header record")
	ErrInvalidIdentifier       = InvalidError("invalid identifier")
	ErrInvalidInventoryRecord  = CorruptError("invalid inventory record")
	ErrInvalidMaxOwned         = InvalidError("max owned must be positive")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInventoryCorrupt        = CorruptError("ownership index inconsistent with asset table")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrNotForSale              = InvalidError("asset is not for sale")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrNotOwner                = InvalidError("caller is not the owner")
	ErrPriceTooHigh            = InvalidError("price is above the maximum the buyer will pay")
	ErrRateLimiting            = LimitError("rate limiting")
	ErrSelfTransfer            = InvalidError("cannot transfer to self")
	ErrTooManyAssets           = LimitError("too many assets")
	ErrTooManyOwned            = LimitError("too many assets owned")
	ErrTooManyTransactions     = LimitError("too many transactions in block")
	ErrTransactionInUse        = ProcessError("database transaction already in use")
	ErrTransactionNotStarted   = ProcessError("database transaction not started")
	ErrWouldReapAccount        = InvalidError("transfer would reap the sending account")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CorruptError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrCorrupt(e error) bool  { _, ok := e.(CorruptError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool    { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
