// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - bounded per owner lists of asset identifiers
//
// the list for an owner is stored under the owner key as the
// concatenation of the identifiers; removal moves the last entry into
// the vacated slot so order is only insertion order until the first
// removal
package ownership
