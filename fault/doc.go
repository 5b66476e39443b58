// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each registry error so that callers
// can compare with == (or errors.Is) and classify with the IsErrX
// functions without resorting to partial string matches
package fault
