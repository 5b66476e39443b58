// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ⧺            = concatenation of byte data
// 3. id           = asset identifier, 32 bytes
// 4. owner        = account key, 32 bytes
// 5. amount       = big endian uint64 (8 bytes)
//
// Assets:
//
//   A ⧺ id                     - asset record
//                                data: fingerprint ⧺ owner ⧺ price flag ⧺ [price]
//
// Ownership:
//
//   L ⧺ owner                  - inventory of owned assets
//                                data: id ⧺ id ⧺ …  (at most the configured maximum)
//
// Counters:
//
//   C ⧺ name                   - global counters
//                                data: big endian uint64
//
// Balances:
//
//   B ⧺ owner                  - funds ledger
//                                data: amount
//
// Block context:
//
//   H ⧺ "current"              - block context used as identifier entropy
//                                data: height ⧺ tx index ⧺ parent hash
//
// Testing:
//   Z ⧺ key                    - testing data
package storage
