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
	"github.com/bitmark-inc/assetregistry/storage"
)

// SetPrice - list an asset for sale, or delist it with a nil price
func (r *Registry) SetPrice(caller account.Account, id identifier.Identifier, price *uint64) error {
	r.Lock()
	defer r.Unlock()

	trx, _, err := r.begin()
	if nil != err {
		return err
	}

	err = r.setPrice(trx, caller, id, price)
	err = r.finish(trx, err)
	r.stats.Record(&r.stats.SetPrice, err)
	if nil != err {
		r.log.Debugf("set price: %v  caller: %v  rejected: %s", id, caller, err)
		return err
	}

	if nil == price {
		r.log.Infof("delisted: %v", id)
	} else {
		r.log.Infof("listed: %v  price: %d", id, *price)
	}
	r.events.Emit(PriceSet{
		Owner: caller,
		Id:    id,
		Price: copyPrice(price),
	})
	return nil
}

func (r *Registry) setPrice(trx storage.Transaction, caller account.Account, id identifier.Identifier, price *uint64) error {
	table := asset.NewTable(trx, r.state.Assets)
	a, err := table.Get(id)
	if nil != err {
		return err
	}
	if a.Owner != caller {
		return fault.ErrNotOwner
	}

	a.Price = copyPrice(price)
	table.Insert(a)
	return nil
}

// callers keep their own pointer
func copyPrice(price *uint64) *uint64 {
	if nil == price {
		return nil
	}
	p := *price
	return &p
}
