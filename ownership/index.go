// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// Index - owner to owned identifiers
type Index struct {
	reader  storage.Reader
	trx     storage.Transaction
	pool    *storage.PoolHandle
	maximum int
}

// NewIndex - index that reads and writes through a transaction
//
// maximum is the capacity of each owner list
func NewIndex(trx storage.Transaction, pool *storage.PoolHandle, maximum int) *Index {
	return &Index{
		reader:  trx,
		trx:     trx,
		pool:    pool,
		maximum: maximum,
	}
}

// NewReader - read only index
func NewReader(reader storage.Reader, pool *storage.PoolHandle, maximum int) *Index {
	return &Index{
		reader:  reader,
		pool:    pool,
		maximum: maximum,
	}
}

// Maximum - capacity of each owner list
func (x *Index) Maximum() int {
	return x.maximum
}

// Get - identifiers owned, empty if the owner has no entry
func (x *Index) Get(owner account.Account) ([]identifier.Identifier, error) {
	return Unpack(x.reader.Get(x.pool, owner[:]))
}

// Count - number of identifiers owned
func (x *Index) Count(owner account.Account) (int, error) {
	buffer := x.reader.Get(x.pool, owner[:])
	if 0 != len(buffer)%identifier.Length {
		return 0, fault.ErrInvalidInventoryRecord
	}
	return len(buffer) / identifier.Length, nil
}

// Append - add an identifier to the end of an owner list
//
// nothing is written if the list is full or already holds the identifier
func (x *Index) Append(owner account.Account, id identifier.Identifier) error {
	list, err := x.Get(owner)
	if nil != err {
		return err
	}

	for _, item := range list {
		if item == id {
			return fault.ErrDuplicateAsset
		}
	}

	if len(list) >= x.maximum {
		return fault.ErrCapacityExceeded
	}

	x.put(owner, append(list, id))
	return nil
}

// Remove - delete an identifier from an owner list
//
// the last entry moves into the removed position
func (x *Index) Remove(owner account.Account, id identifier.Identifier) error {
	list, err := x.Get(owner)
	if nil != err {
		return err
	}

	last := len(list) - 1
	for i, item := range list {
		if item == id {
			list[i] = list[last]
			x.put(owner, list[:last])
			return nil
		}
	}
	return fault.ErrAssetNotInInventory
}

// write a list, empty lists remove the owner entry
func (x *Index) put(owner account.Account, list []identifier.Identifier) {
	if nil == x.trx {
		logger.Panic("ownership.put: read only index")
	}
	if 0 == len(list) {
		x.trx.Delete(x.pool, owner[:])
		return
	}
	x.trx.Put(x.pool, owner[:], Pack(list))
}

// Pack - stored form of an owner list
func Pack(list []identifier.Identifier) []byte {
	buffer := make([]byte, 0, len(list)*identifier.Length)
	for _, id := range list {
		buffer = append(buffer, id[:]...)
	}
	return buffer
}

// Unpack - owner list from its stored form
func Unpack(buffer []byte) ([]identifier.Identifier, error) {
	if 0 != len(buffer)%identifier.Length {
		return nil, fault.ErrInvalidInventoryRecord
	}
	n := len(buffer) / identifier.Length
	list := make([]identifier.Identifier, n)
	for i := 0; i < n; i += 1 {
		copy(list[i][:], buffer[i*identifier.Length:])
	}
	return list, nil
}
