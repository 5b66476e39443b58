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

// Check - verify the committed tables agree with each other
//
// every asset is listed exactly once, under its owner, no list is
// over capacity and the counter equals the number of assets
func (r *Registry) Check() error {
	r.Lock()
	defer r.Unlock()

	listed := make(map[identifier.Identifier]account.Account)
	maximum := ownership.NewReader(storage.Committed(), r.state.OwnerList, r.config.MaxOwned).Maximum()

	err := r.state.OwnerList.NewFetchCursor().Map(func(key []byte, value []byte) error {
		owner, err := account.FromBytes(key)
		if nil != err {
			r.log.Criticalf("check: invalid owner key: %x", key)
			return fault.ErrInvalidInventoryRecord
		}
		list, err := ownership.Unpack(value)
		if nil != err {
			r.log.Criticalf("check: invalid list for owner: %v", owner)
			return err
		}
		if len(list) > maximum {
			r.log.Criticalf("check: owner: %v  holds: %d  maximum: %d", owner, len(list), maximum)
			return fault.ErrInventoryCorrupt
		}
		for _, id := range list {
			if other, ok := listed[id]; ok {
				r.log.Criticalf("check: asset: %v  listed for: %v  and: %v", id, other, owner)
				return fault.ErrInventoryCorrupt
			}
			listed[id] = owner
		}
		return nil
	})
	if nil != err {
		return err
	}

	assets := uint64(0)
	err = r.state.Assets.NewFetchCursor().Map(func(key []byte, value []byte) error {
		id, err := identifier.FromBytes(key)
		if nil != err {
			r.log.Criticalf("check: invalid asset key: %x", key)
			return fault.ErrInvalidAssetRecord
		}
		a, err := asset.Unpack(id, value)
		if nil != err {
			r.log.Criticalf("check: invalid asset record: %v", id)
			return err
		}
		owner, ok := listed[id]
		if !ok || owner != a.Owner {
			r.log.Criticalf("check: asset: %v  owner: %v  not in owner inventory", id, a.Owner)
			return fault.ErrInventoryCorrupt
		}
		delete(listed, id)
		assets += 1
		return nil
	})
	if nil != err {
		return err
	}

	for id, owner := range listed {
		r.log.Criticalf("check: owner: %v  lists missing asset: %v", owner, id)
		return fault.ErrInventoryCorrupt
	}

	count, _ := r.state.Counters.GetN(assetCountKey)
	if count != assets {
		r.log.Criticalf("check: counter: %d  assets: %d", count, assets)
		return fault.ErrInventoryCorrupt
	}

	r.log.Infof("check: %d assets consistent", assets)
	return nil
}
