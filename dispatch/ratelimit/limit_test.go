// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/assetregistry/dispatch/ratelimit"
	"github.com/bitmark-inc/assetregistry/fault"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	assert.Nil(t, ratelimit.Limit(limiter), "unlimited")
}

func TestLimitZeroBurst(t *testing.T) {
	limiter := rate.NewLimiter(1, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(limiter), "wrong error")
}
