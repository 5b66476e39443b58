// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - implementation block header hashing
//
// using the BLAKE2b-256 algorithm
package blockdigest
