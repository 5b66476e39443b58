// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/identifier"
)

const (
	ownerOffset  = identifier.Length
	flagOffset   = ownerOffset + account.KeyLength
	priceOffset  = flagOffset + 1
	unlistedSize = priceOffset
	listedSize   = priceOffset + 8
)

const (
	notForSale = 0
	forSale    = 1
)

// Asset - a single collectible
type Asset struct {
	Id          identifier.Identifier `json:"id"`
	Fingerprint identifier.Identifier `json:"fingerprint"`
	Owner       account.Account       `json:"owner"`
	Price       *uint64               `json:"price,omitempty"`
}

// ForSale - true if a price is set
func (a *Asset) ForSale() bool {
	return nil != a.Price
}

// Pack - the stored form of an asset, the identifier is the key
func (a *Asset) Pack() []byte {
	size := unlistedSize
	if a.ForSale() {
		size = listedSize
	}
	buffer := make([]byte, size)
	copy(buffer, a.Fingerprint[:])
	copy(buffer[ownerOffset:], a.Owner[:])
	if a.ForSale() {
		buffer[flagOffset] = forSale
		binary.BigEndian.PutUint64(buffer[priceOffset:], *a.Price)
	} else {
		buffer[flagOffset] = notForSale
	}
	return buffer
}

// Unpack - restore an asset from its key and stored form
func Unpack(id identifier.Identifier, buffer []byte) (*Asset, error) {
	if len(buffer) < unlistedSize {
		return nil, fault.ErrInvalidAssetRecord
	}

	a := &Asset{
		Id: id,
	}
	copy(a.Fingerprint[:], buffer[:ownerOffset])
	copy(a.Owner[:], buffer[ownerOffset:flagOffset])

	switch buffer[flagOffset] {
	case notForSale:
		if unlistedSize != len(buffer) {
			return nil, fault.ErrInvalidAssetRecord
		}
	case forSale:
		if listedSize != len(buffer) {
			return nil, fault.ErrInvalidAssetRecord
		}
		price := binary.BigEndian.Uint64(buffer[priceOffset:])
		a.Price = &price
	default:
		return nil, fault.ErrInvalidAssetRecord
	}
	return a, nil
}
