// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/dispatch/ratelimit"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Operations - the registry calls reachable from requests
type Operations interface {
	Create(account.Account) (identifier.Identifier, error)
	Transfer(account.Account, account.Account, identifier.Identifier) error
	SetPrice(account.Account, identifier.Identifier, *uint64) error
	Buy(account.Account, identifier.Identifier, uint64) error
	Asset(identifier.Identifier) (*asset.Asset, error)
	Owned(account.Account) ([]identifier.Identifier, error)
}

// Registry - an RPC entry for registry functions
type Registry struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ops     Operations
}

// New - create the entry points
func New(log *logger.L, ops Operations) *Registry {
	return &Registry{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		Ops:     ops,
	}
}

// CreateArguments - arguments for Create
type CreateArguments struct {
	Caller account.Account `json:"caller"`
}

// CreateReply - result from Create
type CreateReply struct {
	Id identifier.Identifier `json:"id"`
}

// Create - mint an asset owned by the caller
func (r *Registry) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Registry.Create: %+v", arguments)

	id, err := r.Ops.Create(arguments.Caller)
	if nil != err {
		return err
	}
	reply.Id = id
	return nil
}

// TransferArguments - arguments for Transfer
type TransferArguments struct {
	Caller account.Account       `json:"caller"`
	To     account.Account       `json:"to"`
	Id     identifier.Identifier `json:"id"`
}

// TransferReply - result from Transfer
type TransferReply struct{}

// Transfer - give one of the caller's assets to another account
func (r *Registry) Transfer(arguments *TransferArguments, reply *TransferReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() || arguments.To.IsZero() {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Registry.Transfer: %+v", arguments)

	return r.Ops.Transfer(arguments.Caller, arguments.To, arguments.Id)
}

// SetPriceArguments - arguments for SetPrice, a nil price delists
type SetPriceArguments struct {
	Caller account.Account       `json:"caller"`
	Id     identifier.Identifier `json:"id"`
	Price  *uint64               `json:"price"`
}

// SetPriceReply - result from SetPrice
type SetPriceReply struct{}

// SetPrice - list or delist one of the caller's assets
func (r *Registry) SetPrice(arguments *SetPriceArguments, reply *SetPriceReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Registry.SetPrice: %+v", arguments)

	return r.Ops.SetPrice(arguments.Caller, arguments.Id, arguments.Price)
}

// BuyArguments - arguments for Buy
type BuyArguments struct {
	Caller   account.Account       `json:"caller"`
	Id       identifier.Identifier `json:"id"`
	MaxPrice uint64                `json:"maxPrice"`
}

// BuyReply - result from Buy
type BuyReply struct{}

// Buy - purchase a listed asset for the caller
func (r *Registry) Buy(arguments *BuyArguments, reply *BuyReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Caller.IsZero() {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Registry.Buy: %+v", arguments)

	return r.Ops.Buy(arguments.Caller, arguments.Id, arguments.MaxPrice)
}

// AssetArguments - arguments for Asset
type AssetArguments struct {
	Id identifier.Identifier `json:"id"`
}

// AssetReply - result from Asset
type AssetReply struct {
	Asset *asset.Asset `json:"asset"`
}

// Asset - fetch a single asset
func (r *Registry) Asset(arguments *AssetArguments, reply *AssetReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	a, err := r.Ops.Asset(arguments.Id)
	if nil != err {
		return err
	}
	reply.Asset = a
	return nil
}

// OwnedArguments - arguments for Owned
type OwnedArguments struct {
	Owner account.Account `json:"owner"`
}

// OwnedReply - result from Owned
type OwnedReply struct {
	Ids []identifier.Identifier `json:"ids"`
}

// Owned - list the identifiers held by an account
func (r *Registry) Owned(arguments *OwnedArguments, reply *OwnedReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Owner.IsZero() {
		return fault.ErrMissingParameters
	}

	ids, err := r.Ops.Owned(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Ids = ids
	return nil
}
