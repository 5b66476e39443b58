// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"math"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/assetregistry/ownership"
	"github.com/bitmark-inc/assetregistry/storage"
)

// Create - mint an asset whose fingerprint is its own identifier
func (r *Registry) Create(owner account.Account) (identifier.Identifier, error) {
	return r.Mint(owner, nil)
}

// Mint - mint a new asset for owner
//
// a nil fingerprint is replaced by the generated identifier
func (r *Registry) Mint(owner account.Account, fingerprint *identifier.Identifier) (identifier.Identifier, error) {
	r.Lock()
	defer r.Unlock()

	trx, ctx, err := r.begin()
	if nil != err {
		return identifier.Identifier{}, err
	}

	id, err := r.mint(trx, ctx, owner, fingerprint)
	err = r.finish(trx, err)
	r.stats.Record(&r.stats.Mint, err)
	if nil != err {
		r.log.Debugf("mint for: %v  rejected: %s", owner, err)
		return identifier.Identifier{}, err
	}

	r.log.Infof("minted: %v  owner: %v", id, owner)
	r.events.Emit(Created{
		Owner: owner,
		Id:    id,
	})
	return id, nil
}

func (r *Registry) mint(trx storage.Transaction, ctx blockheader.Context, owner account.Account, fingerprint *identifier.Identifier) (identifier.Identifier, error) {
	count, _ := trx.GetN(r.state.Counters, assetCountKey)
	id := identifier.Generate(ctx, count)

	table := asset.NewTable(trx, r.state.Assets)
	if table.Contains(id) {
		return id, fault.ErrDuplicateAsset
	}

	if math.MaxUint64 == count || (0 != r.config.MaximumAssets && count >= r.config.MaximumAssets) {
		return id, fault.ErrTooManyAssets
	}

	index := ownership.NewIndex(trx, r.state.OwnerList, r.config.MaxOwned)
	n, err := index.Count(owner)
	if nil != err {
		return id, err
	}
	if n >= r.config.MaxOwned {
		return id, fault.ErrTooManyOwned
	}

	// all checks passed, from here every write belongs to the same batch
	a := &asset.Asset{
		Id:          id,
		Fingerprint: id,
		Owner:       owner,
		Price:       nil,
	}
	if nil != fingerprint {
		a.Fingerprint = *fingerprint
	}

	err = index.Append(owner, id)
	if nil != err {
		return id, translate(err)
	}
	table.Insert(a)
	trx.PutN(r.state.Counters, assetCountKey, count+1)

	return id, nil
}

// capacity failures surface as too many owned
func translate(err error) error {
	if fault.ErrCapacityExceeded == err {
		return fault.ErrTooManyOwned
	}
	return err
}
