// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader

import (
	"sync"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// globals for header
type blockData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	// set once during initialise
	initialised bool
}

// global data
var globalData blockData

// Initialise - setup the current block data
//
// storage must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if nil == storage.Pool.Header {
		return fault.ErrDatabaseIsNotSet
	}

	log := logger.New("blockheader")
	globalData.log = log
	log.Info("starting…")

	current, err := get(storage.Pool.Header)
	if nil != err {
		log.Criticalf("header read error: %s", err)
		return err
	}

	log.Infof("block height: %d", current.Height)
	log.Infof("transaction index: %d", current.TxIndex)
	log.Infof("parent block: %v", current.ParentHash)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the block header system
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
