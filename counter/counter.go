// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - atomic counters for process statistics
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer updated atomically
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Operations - per process counts of registry requests
type Operations struct {
	Mint     Counter
	Transfer Counter
	SetPrice Counter
	Buy      Counter
	Rejected Counter
}

// Record - count one operation, err non-nil marks it rejected
func (o *Operations) Record(c *Counter, err error) {
	if nil != err {
		o.Rejected.Increment()
		return
	}
	c.Increment()
}

// Snapshot - current values keyed by name
func (o *Operations) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"mint":     o.Mint.Uint64(),
		"transfer": o.Transfer.Uint64(),
		"setPrice": o.SetPrice.Uint64(),
		"buy":      o.Buy.Uint64(),
		"rejected": o.Rejected.Uint64(),
	}
}
