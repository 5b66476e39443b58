// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - mint, transfer, price and sell assets
//
// every operation runs under a single lock inside one storage
// transaction; all preconditions are checked first and any failure
// aborts the transaction so the asset table, the ownership index, the
// counter and the ledger always move together
//
// events are emitted only after a successful commit
package registry
