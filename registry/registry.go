// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/counter"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/ledger"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// key of the global asset counter in the counters pool
var assetCountKey = []byte("assets")

// Config - registry limits
type Config struct {
	MaxOwned      int    `gluamapper:"max_owned" json:"max_owned"`
	MaximumAssets uint64 `gluamapper:"maximum_assets" json:"maximum_assets"` // zero means no limit below the counter range
}

// State - the pools holding the registry tables
type State struct {
	Assets    *storage.PoolHandle
	OwnerList *storage.PoolHandle
	Counters  *storage.PoolHandle
}

// Registry - the asset registry
type Registry struct {
	sync.Mutex

	log    *logger.L
	config Config
	state  State
	ledger ledger.Ledger
	header blockheader.Header
	events Emitter
	stats  counter.Operations
}

// New - create a registry over the initialised storage pools
func New(config Config, l ledger.Ledger, h blockheader.Header, e Emitter) (*Registry, error) {
	if config.MaxOwned <= 0 {
		return nil, fault.ErrInvalidMaxOwned
	}
	if nil == l || nil == h || nil == e {
		return nil, fault.ErrMissingParameters
	}
	if nil == storage.Pool.Assets {
		return nil, fault.ErrDatabaseIsNotSet
	}

	r := &Registry{
		log:    logger.New("registry"),
		config: config,
		state: State{
			Assets:    storage.Pool.Assets,
			OwnerList: storage.Pool.OwnerList,
			Counters:  storage.Pool.Counters,
		},
		ledger: l,
		header: h,
		events: e,
	}

	r.log.Infof("max owned: %d  maximum assets: %d", config.MaxOwned, config.MaximumAssets)
	return r, nil
}

// Config - the limits in force
func (r *Registry) Config() Config {
	return r.config
}

// Statistics - counts of accepted and rejected operations
func (r *Registry) Statistics() map[string]uint64 {
	return r.stats.Snapshot()
}

// start a transaction for a mutating operation
func (r *Registry) begin() (storage.Transaction, blockheader.Context, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, blockheader.Context{}, err
	}
	ctx, err := r.header.NextTransaction(trx)
	if nil != err {
		trx.Abort()
		return nil, blockheader.Context{}, err
	}
	return trx, ctx, nil
}

// commit if err is nil, otherwise discard everything the operation wrote
func (r *Registry) finish(trx storage.Transaction, err error) error {
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		r.log.Errorf("commit error: %s", err)
	}
	return err
}
