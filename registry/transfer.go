// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/assetregistry/ownership"
	"github.com/bitmark-inc/assetregistry/storage"
)

// Transfer - give an asset to another account
//
// the asking price is left unchanged
func (r *Registry) Transfer(from account.Account, to account.Account, id identifier.Identifier) error {
	r.Lock()
	defer r.Unlock()

	trx, _, err := r.begin()
	if nil != err {
		return err
	}

	err = r.transfer(trx, from, to, id)
	err = r.finish(trx, err)
	r.stats.Record(&r.stats.Transfer, err)
	if nil != err {
		r.log.Debugf("transfer: %v  from: %v  to: %v  rejected: %s", id, from, to, err)
		return err
	}

	r.log.Infof("transferred: %v  from: %v  to: %v", id, from, to)
	r.events.Emit(Transferred{
		From: from,
		To:   to,
		Id:   id,
	})
	return nil
}

func (r *Registry) transfer(trx storage.Transaction, from account.Account, to account.Account, id identifier.Identifier) error {
	if from == to {
		return fault.ErrSelfTransfer
	}

	a, err := asset.NewTable(trx, r.state.Assets).Get(id)
	if nil != err {
		return err
	}
	if a.Owner != from {
		return fault.ErrNotOwner
	}

	return r.move(trx, a, to)
}

// move an asset into the new owner list, out of the old one, then
// rewrite the asset record
func (r *Registry) move(trx storage.Transaction, a *asset.Asset, to account.Account) error {
	from := a.Owner
	index := ownership.NewIndex(trx, r.state.OwnerList, r.config.MaxOwned)

	err := index.Append(to, a.Id)
	if fault.ErrDuplicateAsset == err {
		r.log.Criticalf("asset: %v  owner: %v  already listed for: %v", a.Id, from, to)
		return fault.ErrInventoryCorrupt
	}
	if nil != err {
		return translate(err)
	}

	err = index.Remove(from, a.Id)
	if fault.ErrAssetNotInInventory == err {
		r.log.Criticalf("asset: %v  missing from inventory of owner: %v", a.Id, from)
		return fault.ErrInventoryCorrupt
	}
	if nil != err {
		return err
	}

	a.Owner = to
	asset.NewTable(trx, r.state.Assets).Insert(a)
	return nil
}
