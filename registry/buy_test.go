// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/assetregistry/registry"
	"github.com/bitmark-inc/assetregistry/registry/mocks"
	"github.com/bitmark-inc/assetregistry/storage"
)

func TestSetPrice(t *testing.T) {
	setup(t)
	defer teardown()

	r, rec := newRegistry(t, registry.Config{MaxOwned: maxOwned})
	id, _ := r.Create(alice)

	p := price(100)
	assert.Nil(t, r.SetPrice(alice, id, p), "set price")
	*p = 1 // caller keeps its own copy

	a, _ := r.Asset(id)
	assert.Equal(t, price(100), a.Price, "listed price")
	assert.Equal(t, registry.PriceSet{Owner: alice, Id: id, Price: price(100)}, rec.events[1], "event")

	assert.Nil(t, r.SetPrice(alice, id, nil), "delist")
	a, _ = r.Asset(id)
	assert.Nil(t, a.Price, "delisted price")
	assert.Equal(t, registry.PriceSet{Owner: alice, Id: id, Price: nil}, rec.events[2], "delist event")

	// delisted asset cannot be bought
	assert.Nil(t, r.Deposit(bob, 1000), "fund bob")
	assert.Equal(t, fault.ErrNotForSale, r.Buy(bob, id, 1000), "buy delisted")
}

func TestSetPriceErrors(t *testing.T) {
	setup(t)
	defer teardown()

	r, rec := newRegistry(t, registry.Config{MaxOwned: maxOwned})
	id, _ := r.Create(alice)

	missing := identifier.Generate(blockheader.Context{Height: 5}, 12345)
	assert.Equal(t, fault.ErrAssetNotFound, r.SetPrice(alice, missing, price(1)), "missing asset")
	assert.Equal(t, fault.ErrNotOwner, r.SetPrice(bob, id, price(1)), "not owner")

	a, _ := r.Asset(id)
	assert.Nil(t, a.Price, "price changed")
	assert.Equal(t, 1, len(rec.events), "events for failures")
}

func TestBuy(t *testing.T) {
	setup(t)
	defer teardown()

	r, rec := newRegistry(t, registry.Config{MaxOwned: maxOwned})
	id, _ := r.Create(alice)
	assert.Nil(t, r.SetPrice(alice, id, price(100)), "set price")
	assert.Nil(t, r.Deposit(bob, 1000), "fund bob")

	err := r.Buy(bob, id, 150)
	assert.Nil(t, err, "buy")

	assert.Equal(t, uint64(900), r.Balance(bob), "buyer paid the asking price")
	assert.Equal(t, uint64(100), r.Balance(alice), "seller received the asking price")

	a, _ := r.Asset(id)
	assert.Equal(t, bob, a.Owner, "owner")
	assert.Nil(t, a.Price, "listing not cleared")

	owned, _ := r.Owned(bob)
	assert.Equal(t, []identifier.Identifier{id}, owned, "buyer inventory")
	owned, _ = r.Owned(alice)
	assert.Equal(t, 0, len(owned), "seller inventory")

	n := len(rec.events)
	assert.Equal(t, registry.Transferred{From: alice, To: bob, Id: id}, rec.events[n-2], "transfer event")
	assert.Equal(t, registry.Sold{Buyer: bob, Seller: alice, Id: id, Price: 100}, rec.events[n-1], "sold event")

	// sold asset is no longer for sale
	assert.Nil(t, r.Deposit(carol, 1000), "fund carol")
	assert.Equal(t, fault.ErrNotForSale, r.Buy(carol, id, 1000), "buy again")
	assert.Nil(t, r.Check(), "check")
}

func TestBuyExactPrice(t *testing.T) {
	setup(t)
	defer teardown()

	r, _ := newRegistry(t, registry.Config{MaxOwned: maxOwned})
	id, _ := r.Create(alice)
	assert.Nil(t, r.SetPrice(alice, id, price(100)), "set price")
	assert.Nil(t, r.Deposit(bob, 200), "fund bob")

	assert.Nil(t, r.Buy(bob, id, 100), "buy at ceiling")
	assert.Equal(t, uint64(100), r.Balance(bob), "buyer balance")
}

func TestBuyErrors(t *testing.T) {
	setup(t)
	defer teardown()

	r, _ := newRegistry(t, registry.Config{MaxOwned: 1})

	listed, _ := r.Create(alice)
	assert.Nil(t, r.SetPrice(alice, listed, price(100)), "set price")
	unlisted, _ := r.Create(carol)
	missing := identifier.Generate(blockheader.Context{Height: 5}, 12345)

	assert.Nil(t, r.Deposit(bob, 1000), "fund bob")
	assert.Nil(t, r.Deposit(carol, 50), "fund carol")
	assert.Nil(t, r.Deposit(alice, 1000), "fund alice")

	assert.Equal(t, fault.ErrAssetNotFound, r.Buy(bob, missing, 1000), "missing")
	assert.Equal(t, fault.ErrNotForSale, r.Buy(bob, unlisted, 1000), "unlisted")
	assert.Equal(t, fault.ErrPriceTooHigh, r.Buy(bob, listed, 50), "price too high")
	assert.Equal(t, fault.ErrSelfTransfer, r.Buy(alice, listed, 1000), "own asset")
	assert.Equal(t, fault.ErrTooManyOwned, r.Buy(carol, listed, 1000), "buyer full")

	// unchanged by all of the above
	assert.Equal(t, uint64(1000), r.Balance(bob), "bob balance")
	assert.Equal(t, uint64(1000), r.Balance(alice), "alice balance")
	a, _ := r.Asset(listed)
	assert.Equal(t, alice, a.Owner, "owner")
	assert.Equal(t, price(100), a.Price, "price")
	assert.Nil(t, r.Check(), "check")
}

func TestBuyLedgerErrors(t *testing.T) {
	items := []struct {
		name    string
		deposit uint64
		price   uint64
		err     error
	}{
		{"insufficient funds", 50, 100, fault.ErrInsufficientFunds},
		{"would reap buyer", 100, 100, fault.ErrWouldReapAccount},
		{"seller below existential deposit", 100, 5, fault.ErrBelowExistentialDeposit},
	}

	for _, item := range items {
		t.Run(item.name, func(t *testing.T) {
			setup(t)
			defer teardown()

			r, rec := newRegistry(t, registry.Config{MaxOwned: maxOwned})
			id, _ := r.Create(alice)
			assert.Nil(t, r.SetPrice(alice, id, price(item.price)), "set price")
			assert.Nil(t, r.Deposit(bob, item.deposit), "fund bob")

			err := r.Buy(bob, id, item.price)
			assert.Equal(t, item.err, err, "wrong error")

			assert.Equal(t, item.deposit, r.Balance(bob), "buyer balance")
			assert.Equal(t, uint64(0), r.Balance(alice), "seller balance")

			a, _ := r.Asset(id)
			assert.Equal(t, alice, a.Owner, "owner")
			assert.Equal(t, price(item.price), a.Price, "price")
			assert.Equal(t, 2, len(rec.events), "events after failed buy")
		})
	}
}

// a ledger failure aborts the buy and nothing is emitted
func TestBuyMockLedgerFailure(t *testing.T) {
	setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	e := mocks.NewMockEmitter(ctl)

	r, err := registry.New(registry.Config{MaxOwned: maxOwned}, l, blockheader.New(), e)
	assert.Nil(t, err, "new")

	e.EXPECT().Emit(gomock.Any()).Times(2)

	id, err := r.Create(alice)
	assert.Nil(t, err, "create")
	assert.Nil(t, r.SetPrice(alice, id, price(70)), "set price")

	l.EXPECT().Transfer(gomock.Any(), bob, alice, uint64(70)).Return(fault.ErrInsufficientFunds).Times(1)

	err = r.Buy(bob, id, 100)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "ledger error not propagated")

	a, _ := r.Asset(id)
	assert.Equal(t, alice, a.Owner, "owner")
	assert.Equal(t, price(70), a.Price, "price")
}

// the ledger is charged the asking price, not the ceiling
func TestBuyMockLedgerAmount(t *testing.T) {
	setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	e := mocks.NewMockEmitter(ctl)

	r, err := registry.New(registry.Config{MaxOwned: maxOwned}, l, blockheader.New(), e)
	assert.Nil(t, err, "new")

	gomock.InOrder(
		e.EXPECT().Emit(gomock.AssignableToTypeOf(registry.Created{})).Times(1),
		e.EXPECT().Emit(gomock.AssignableToTypeOf(registry.PriceSet{})).Times(1),
		e.EXPECT().Emit(gomock.AssignableToTypeOf(registry.Transferred{})).Times(1),
		e.EXPECT().Emit(gomock.AssignableToTypeOf(registry.Sold{})).Times(1),
	)

	id, _ := r.Create(alice)
	assert.Nil(t, r.SetPrice(alice, id, price(70)), "set price")

	l.EXPECT().Transfer(gomock.Any(), bob, alice, uint64(70)).Return(nil).Times(1)

	assert.Nil(t, r.Buy(bob, id, 1000), "buy")
}

// the identifier is derived from the context supplied for the operation
func TestMintMockContext(t *testing.T) {
	setup(t)
	defer teardown()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHeader(ctl)
	e := mocks.NewMockEmitter(ctl)

	r, err := registry.New(registry.Config{MaxOwned: maxOwned}, mocks.NewMockLedger(ctl), h, e)
	assert.Nil(t, err, "new")

	ctx := blockheader.Context{Height: 7, TxIndex: 3}
	h.EXPECT().NextTransaction(gomock.Any()).Return(ctx, nil).Times(1)
	e.EXPECT().Emit(gomock.Any()).Times(1)

	id, err := r.Create(alice)
	assert.Nil(t, err, "create")
	assert.Equal(t, identifier.Generate(ctx, 0), id, "identifier")
}

func TestBuyRollsBackFundsWhenMoveFails(t *testing.T) {
	setup(t)
	defer teardown()

	r, rec := newRegistry(t, registry.Config{MaxOwned: maxOwned})

	id, err := r.Create(alice)
	assert.Nil(t, err, "create")
	assert.Nil(t, r.SetPrice(alice, id, price(100)), "set price")
	assert.Nil(t, r.Deposit(bob, 1000), "fund bob")

	// remove the seller inventory so the move fails after funds transfer
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Delete(storage.Pool.OwnerList, alice[:])
	assert.Nil(t, trx.Commit(), "commit")

	err = r.Buy(bob, id, 100)
	assert.Equal(t, fault.ErrInventoryCorrupt, err, "wrong error")

	assert.Equal(t, uint64(1000), r.Balance(bob), "buyer balance")
	assert.Equal(t, uint64(0), r.Balance(alice), "seller balance")

	a, err := r.Asset(id)
	assert.Nil(t, err, "asset")
	assert.Equal(t, alice, a.Owner, "owner changed")
	assert.Equal(t, price(100), a.Price, "price changed")

	owned, _ := r.Owned(bob)
	assert.Equal(t, 0, len(owned), "buyer inventory")
	assert.Equal(t, 2, len(rec.events), "events for failed buy")
}
