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

// Buy - pay the asking price and take ownership
//
// the buyer pays the current price, never more than maxPrice; funds
// and ownership move in the same transaction and the listing is
// cleared
func (r *Registry) Buy(buyer account.Account, id identifier.Identifier, maxPrice uint64) error {
	r.Lock()
	defer r.Unlock()

	trx, _, err := r.begin()
	if nil != err {
		return err
	}

	sold, err := r.buy(trx, buyer, id, maxPrice)
	err = r.finish(trx, err)
	r.stats.Record(&r.stats.Buy, err)
	if nil != err {
		r.log.Debugf("buy: %v  buyer: %v  rejected: %s", id, buyer, err)
		return err
	}

	r.log.Infof("sold: %v  seller: %v  buyer: %v  price: %d", id, sold.Seller, buyer, sold.Price)
	r.events.Emit(Transferred{
		From: sold.Seller,
		To:   buyer,
		Id:   id,
	})
	r.events.Emit(sold)
	return nil
}

func (r *Registry) buy(trx storage.Transaction, buyer account.Account, id identifier.Identifier, maxPrice uint64) (Sold, error) {
	a, err := asset.NewTable(trx, r.state.Assets).Get(id)
	if nil != err {
		return Sold{}, err
	}
	if !a.ForSale() {
		return Sold{}, fault.ErrNotForSale
	}
	price := *a.Price
	if maxPrice < price {
		return Sold{}, fault.ErrPriceTooHigh
	}

	seller := a.Owner
	if seller == buyer {
		return Sold{}, fault.ErrSelfTransfer
	}

	n, err := ownership.NewIndex(trx, r.state.OwnerList, r.config.MaxOwned).Count(buyer)
	if nil != err {
		return Sold{}, err
	}
	if n >= r.config.MaxOwned {
		return Sold{}, fault.ErrTooManyOwned
	}

	// funds first, ledger errors are returned unchanged
	err = r.ledger.Transfer(trx, buyer, seller, price)
	if nil != err {
		return Sold{}, err
	}

	a.Price = nil
	err = r.move(trx, a, buyer)
	if nil != err {
		return Sold{}, err
	}

	return Sold{
		Buyer:  buyer,
		Seller: seller,
		Id:     id,
		Price:  price,
	}, nil
}
