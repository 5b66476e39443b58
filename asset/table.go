// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// Table - access to the asset pool
type Table struct {
	reader storage.Reader
	trx    storage.Transaction
	pool   *storage.PoolHandle
}

// NewTable - table that reads and writes through a transaction
func NewTable(trx storage.Transaction, pool *storage.PoolHandle) *Table {
	return &Table{
		reader: trx,
		trx:    trx,
		pool:   pool,
	}
}

// NewReader - read only table
func NewReader(reader storage.Reader, pool *storage.PoolHandle) *Table {
	return &Table{
		reader: reader,
		pool:   pool,
	}
}

// Contains - check if an identifier is in use
func (t *Table) Contains(id identifier.Identifier) bool {
	return t.reader.Has(t.pool, id[:])
}

// Get - fetch an asset
func (t *Table) Get(id identifier.Identifier) (*Asset, error) {
	buffer := t.reader.Get(t.pool, id[:])
	if nil == buffer {
		return nil, fault.ErrAssetNotFound
	}
	return Unpack(id, buffer)
}

// Insert - store an asset, replacing any previous record
func (t *Table) Insert(a *Asset) {
	if nil == t.trx {
		logger.Panic("asset.Insert: read only table")
	}
	t.trx.Put(t.pool, a.Id[:], a.Pack())
}
