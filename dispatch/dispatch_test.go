// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/dispatch"
	"github.com/bitmark-inc/assetregistry/dispatch/fixtures"
	"github.com/bitmark-inc/assetregistry/dispatch/mocks"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/logger"
)

var testId = identifier.Generate(blockheader.Context{Height: 1}, 1)

func TestCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	r := dispatch.New(logger.New(fixtures.LogCategory), ops)

	ops.EXPECT().Create(fixtures.Seller).Return(testId, nil).Times(1)

	var reply dispatch.CreateReply
	err := r.Create(&dispatch.CreateArguments{Caller: fixtures.Seller}, &reply)
	assert.Nil(t, err, "wrong create")
	assert.Equal(t, testId, reply.Id, "wrong identifier")
}

func TestCreateError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	r := dispatch.New(logger.New(fixtures.LogCategory), ops)

	ops.EXPECT().Create(fixtures.Seller).Return(identifier.Identifier{}, fault.ErrTooManyOwned).Times(1)

	var reply dispatch.CreateReply
	err := r.Create(&dispatch.CreateArguments{Caller: fixtures.Seller}, &reply)
	assert.Equal(t, fault.ErrTooManyOwned, err, "wrong error")
}

func TestMissingCaller(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no operation may be reached
	r := dispatch.New(logger.New(fixtures.LogCategory), mocks.NewMockOperations(ctl))

	assert.Equal(t, fault.ErrMissingParameters, r.Create(&dispatch.CreateArguments{}, &dispatch.CreateReply{}), "create")
	assert.Equal(t, fault.ErrMissingParameters, r.Transfer(&dispatch.TransferArguments{Caller: fixtures.Seller}, &dispatch.TransferReply{}), "transfer")
	assert.Equal(t, fault.ErrMissingParameters, r.SetPrice(&dispatch.SetPriceArguments{}, &dispatch.SetPriceReply{}), "set price")
	assert.Equal(t, fault.ErrMissingParameters, r.Buy(&dispatch.BuyArguments{}, &dispatch.BuyReply{}), "buy")
	assert.Equal(t, fault.ErrMissingParameters, r.Owned(&dispatch.OwnedArguments{}, &dispatch.OwnedReply{}), "owned")
	assert.Equal(t, fault.ErrMissingParameters, r.Asset(nil, &dispatch.AssetReply{}), "asset")
}

func TestTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	r := dispatch.New(logger.New(fixtures.LogCategory), ops)

	ops.EXPECT().Transfer(fixtures.Seller, fixtures.Buyer, testId).Return(fault.ErrNotOwner).Times(1)

	args := dispatch.TransferArguments{
		Caller: fixtures.Seller,
		To:     fixtures.Buyer,
		Id:     testId,
	}
	err := r.Transfer(&args, &dispatch.TransferReply{})
	assert.Equal(t, fault.ErrNotOwner, err, "error not passed through")
}

func TestSetPrice(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	r := dispatch.New(logger.New(fixtures.LogCategory), ops)

	price := uint64(100)
	gomock.InOrder(
		ops.EXPECT().SetPrice(fixtures.Seller, testId, &price).Return(nil).Times(1),
		ops.EXPECT().SetPrice(fixtures.Seller, testId, nil).Return(nil).Times(1),
	)

	err := r.SetPrice(&dispatch.SetPriceArguments{Caller: fixtures.Seller, Id: testId, Price: &price}, &dispatch.SetPriceReply{})
	assert.Nil(t, err, "list")

	err = r.SetPrice(&dispatch.SetPriceArguments{Caller: fixtures.Seller, Id: testId}, &dispatch.SetPriceReply{})
	assert.Nil(t, err, "delist")
}

func TestBuy(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	r := dispatch.New(logger.New(fixtures.LogCategory), ops)

	ops.EXPECT().Buy(fixtures.Buyer, testId, uint64(150)).Return(nil).Times(1)

	err := r.Buy(&dispatch.BuyArguments{Caller: fixtures.Buyer, Id: testId, MaxPrice: 150}, &dispatch.BuyReply{})
	assert.Nil(t, err, "buy")
}

func TestQueries(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	r := dispatch.New(logger.New(fixtures.LogCategory), ops)

	a := &asset.Asset{Id: testId, Fingerprint: testId, Owner: fixtures.Seller}
	ops.EXPECT().Asset(testId).Return(a, nil).Times(1)
	ops.EXPECT().Owned(fixtures.Seller).Return([]identifier.Identifier{testId}, nil).Times(1)

	var assetReply dispatch.AssetReply
	err := r.Asset(&dispatch.AssetArguments{Id: testId}, &assetReply)
	assert.Nil(t, err, "asset")
	assert.Equal(t, a, assetReply.Asset, "asset reply")

	var ownedReply dispatch.OwnedReply
	err = r.Owned(&dispatch.OwnedArguments{Owner: fixtures.Seller}, &ownedReply)
	assert.Nil(t, err, "owned")
	assert.Equal(t, []identifier.Identifier{testId}, ownedReply.Ids, "owned reply")
}
