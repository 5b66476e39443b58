// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/assetregistry/messagebus"
)

// Event - an observable result of a successful operation
type Event interface {
	Command() string
}

// Emitter - receiver for events
type Emitter interface {
	Emit(Event)
}

// Created - an asset was minted
type Created struct {
	Owner account.Account       `json:"owner"`
	Id    identifier.Identifier `json:"id"`
}

// Transferred - an asset changed owner
type Transferred struct {
	From account.Account       `json:"from"`
	To   account.Account       `json:"to"`
	Id   identifier.Identifier `json:"id"`
}

// PriceSet - an asset was listed, relisted or delisted
type PriceSet struct {
	Owner account.Account       `json:"owner"`
	Id    identifier.Identifier `json:"id"`
	Price *uint64               `json:"price"`
}

// Sold - an asset was bought at its asking price
type Sold struct {
	Buyer  account.Account       `json:"buyer"`
	Seller account.Account       `json:"seller"`
	Id     identifier.Identifier `json:"id"`
	Price  uint64                `json:"price"`
}

// Command - name used on the message bus
func (Created) Command() string { return "created" }

// Command - name used on the message bus
func (Transferred) Command() string { return "transferred" }

// Command - name used on the message bus
func (PriceSet) Command() string { return "priceSet" }

// Command - name used on the message bus
func (Sold) Command() string { return "sold" }

type busEmitter struct {
	queue *messagebus.Queue
}

// NewBusEmitter - emit events on to a message bus queue
func NewBusEmitter(queue *messagebus.Queue) Emitter {
	return &busEmitter{
		queue: queue,
	}
}

func (b *busEmitter) Emit(e Event) {
	b.queue.Send(e.Command(), e)
}
