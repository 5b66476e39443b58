// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/assetregistry/registry"
	"github.com/bitmark-inc/assetregistry/storage"
)

func TestTransfer(t *testing.T) {
	setup(t)
	defer teardown()

	r, rec := newRegistry(t, registry.Config{MaxOwned: maxOwned})

	id, err := r.Create(alice)
	assert.Nil(t, err, "create")

	err = r.Transfer(alice, bob, id)
	assert.Nil(t, err, "transfer")

	a, _ := r.Asset(id)
	assert.Equal(t, bob, a.Owner, "owner")

	owned, _ := r.Owned(alice)
	assert.Equal(t, 0, len(owned), "alice inventory")
	owned, _ = r.Owned(bob)
	assert.Equal(t, []identifier.Identifier{id}, owned, "bob inventory")

	assert.Equal(t, registry.Transferred{From: alice, To: bob, Id: id}, rec.events[1], "event")
	assert.Nil(t, r.Check(), "check")
}

func TestTransferErrors(t *testing.T) {
	setup(t)
	defer teardown()

	r, rec := newRegistry(t, registry.Config{MaxOwned: maxOwned})

	id, err := r.Create(alice)
	assert.Nil(t, err, "create")
	missing := identifier.Generate(blockheader.Context{Height: 5}, 12345)

	items := []struct {
		from account.Account
		to   account.Account
		id   identifier.Identifier
		err  error
	}{
		{alice, alice, id, fault.ErrSelfTransfer},
		{alice, bob, missing, fault.ErrAssetNotFound},
		{bob, carol, id, fault.ErrNotOwner},
		{bob, bob, id, fault.ErrSelfTransfer},
	}

	for i, item := range items {
		err := r.Transfer(item.from, item.to, item.id)
		assert.Equal(t, item.err, err, "item: %d", i)
	}

	a, _ := r.Asset(id)
	assert.Equal(t, alice, a.Owner, "owner changed")
	assert.Equal(t, 1, len(rec.events), "events for failed transfers")
	assert.Nil(t, r.Check(), "check")
}

func TestTransferRecipientFull(t *testing.T) {
	setup(t)
	defer teardown()

	r, rec := newRegistry(t, registry.Config{MaxOwned: 1})

	id, err := r.Create(alice)
	assert.Nil(t, err, "create alice")
	held, err := r.Create(bob)
	assert.Nil(t, err, "create bob")

	err = r.Transfer(alice, bob, id)
	assert.Equal(t, fault.ErrTooManyOwned, err, "wrong error")

	a, _ := r.Asset(id)
	assert.Equal(t, alice, a.Owner, "owner changed")

	owned, _ := r.Owned(alice)
	assert.Equal(t, []identifier.Identifier{id}, owned, "alice inventory")
	owned, _ = r.Owned(bob)
	assert.Equal(t, []identifier.Identifier{held}, owned, "bob inventory")

	assert.Equal(t, 2, len(rec.events), "event for failed transfer")
	assert.Nil(t, r.Check(), "check")
}

func TestTransferKeepsPrice(t *testing.T) {
	setup(t)
	defer teardown()

	r, _ := newRegistry(t, registry.Config{MaxOwned: maxOwned})

	id, _ := r.Create(alice)
	assert.Nil(t, r.SetPrice(alice, id, price(40)), "set price")
	assert.Nil(t, r.Transfer(alice, bob, id), "transfer")

	a, _ := r.Asset(id)
	assert.Equal(t, price(40), a.Price, "price after transfer")
}

func TestTransferCorruptInventory(t *testing.T) {
	setup(t)
	defer teardown()

	r, rec := newRegistry(t, registry.Config{MaxOwned: maxOwned})

	id, err := r.Create(alice)
	assert.Nil(t, err, "create")

	// break the index behind the registry
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Delete(storage.Pool.OwnerList, alice[:])
	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, fault.ErrInventoryCorrupt, r.Check(), "check before transfer")

	err = r.Transfer(alice, bob, id)
	assert.Equal(t, fault.ErrInventoryCorrupt, err, "wrong error")
	assert.True(t, fault.IsErrCorrupt(err), "not a corrupt class error")

	// the append to bob was discarded with the rest of the transaction
	owned, _ := r.Owned(bob)
	assert.Equal(t, 0, len(owned), "bob inventory")
	a, _ := r.Asset(id)
	assert.Equal(t, alice, a.Owner, "owner changed")
	assert.Equal(t, 1, len(rec.events), "event for failed transfer")
}
