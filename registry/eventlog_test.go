// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/background"
	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/ledger"
	"github.com/bitmark-inc/assetregistry/messagebus"
	"github.com/bitmark-inc/assetregistry/registry"
	"github.com/bitmark-inc/assetregistry/storage"
)

func TestBusEmitter(t *testing.T) {
	setup(t)
	defer teardown()

	queue := messagebus.NewQueue(10)
	r, err := registry.New(registry.Config{MaxOwned: maxOwned}, ledger.New(storage.Pool.Balances, 0), blockheader.New(), registry.NewBusEmitter(queue))
	assert.Nil(t, err, "new")

	id, err := r.Create(alice)
	assert.Nil(t, err, "create")

	item := <-queue.Chan()
	assert.Equal(t, "created", item.Command, "command")
	assert.Equal(t, []interface{}{registry.Created{Owner: alice, Id: id}}, item.Parameters, "parameters")
}

func TestEventLog(t *testing.T) {
	setup(t)
	defer teardown()

	queue := messagebus.NewQueue(10)
	r, err := registry.New(registry.Config{MaxOwned: maxOwned}, ledger.New(storage.Pool.Balances, 0), blockheader.New(), registry.NewBusEmitter(queue))
	assert.Nil(t, err, "new")

	id, _ := r.Create(alice)
	r.Transfer(alice, bob, id)
	r.SetPrice(bob, id, price(3))

	eventLog := registry.NewEventLog(queue)
	p := background.Start(background.Processes{eventLog}, nil)
	p.Stop()

	assert.Equal(t, uint64(3), eventLog.Count(), "events written")
	assert.Equal(t, 0, len(queue.Chan()), "queue not drained")
}
