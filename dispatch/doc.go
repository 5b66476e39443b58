// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dispatch - request entry points for the registry
//
// each method takes the authenticated caller in its arguments, applies
// rate limiting and calls exactly one registry operation
package dispatch
