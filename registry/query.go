// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/assetregistry/ownership"
	"github.com/bitmark-inc/assetregistry/storage"
)

// Asset - committed asset record
func (r *Registry) Asset(id identifier.Identifier) (*asset.Asset, error) {
	r.Lock()
	defer r.Unlock()

	return asset.NewReader(storage.Committed(), r.state.Assets).Get(id)
}

// Owned - identifiers held by owner
func (r *Registry) Owned(owner account.Account) ([]identifier.Identifier, error) {
	r.Lock()
	defer r.Unlock()

	return ownership.NewReader(storage.Committed(), r.state.OwnerList, r.config.MaxOwned).Get(owner)
}

// Count - number of assets ever minted
func (r *Registry) Count() uint64 {
	r.Lock()
	defer r.Unlock()

	n, _ := r.state.Counters.GetN(assetCountKey)
	return n
}

// Balance - ledger balance of an account
func (r *Registry) Balance(a account.Account) uint64 {
	r.Lock()
	defer r.Unlock()

	return r.ledger.Balance(storage.Committed(), a)
}

// Deposit - credit an account with new funds
func (r *Registry) Deposit(a account.Account, amount uint64) error {
	r.Lock()
	defer r.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = r.finish(trx, r.ledger.Deposit(trx, a, amount))
	if nil != err {
		return err
	}

	r.log.Infof("deposit: %d  to: %v", amount, a)
	return nil
}

// Seal - close the current block
func (r *Registry) Seal() (blockheader.Context, error) {
	r.Lock()
	defer r.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return blockheader.Context{}, err
	}
	ctx, err := r.header.Seal(trx)
	err = r.finish(trx, err)
	if nil != err {
		return blockheader.Context{}, err
	}
	return ctx, nil
}
