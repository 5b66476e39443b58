// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - the table of minted assets
//
// each record is keyed by the asset identifier and holds:
//
//   fingerprint  32 bytes
//   owner        32 bytes
//   price flag    1 byte   0 = not for sale, 1 = price follows
//   price         8 bytes  big endian, only when flag is 1
package asset
