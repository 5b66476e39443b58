// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - all writes are held in a batch until Commit
//
// reads through the transaction see its own uncommitted writes
type Transaction interface {
	Reader
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

type transactionData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(db *leveldb.DB, c Cache) *transactionData {
	return &transactionData{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: c,
	}
}

func (t *transactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}

	t.inUse = true
	return nil
}

func (t *transactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

func (t *transactionData) Put(p *PoolHandle, key []byte, value []byte) {
	pk := p.prefixKey(key)

	// the batch keeps a copy, the cache must too
	v := make([]byte, len(value))
	copy(v, value)

	t.cache.Set(dbPut, string(pk), v)
	t.batch.Put(pk, v)
}

func (t *transactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

func (t *transactionData) Delete(p *PoolHandle, key []byte) {
	pk := p.prefixKey(key)
	t.cache.Set(dbDelete, string(pk), nil)
	t.batch.Delete(pk)
}

func (t *transactionData) Get(p *PoolHandle, key []byte) []byte {
	pk := p.prefixKey(key)
	value, deleted, found := t.cache.Get(string(pk))
	if deleted {
		return nil
	}
	if found {
		return value
	}

	value, err := t.db.Get(pk, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

func (t *transactionData) Has(p *PoolHandle, key []byte) bool {
	return nil != t.Get(p, key)
}

// Commit - write the whole batch atomically
func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotStarted
	}

	err := t.db.Write(t.batch, nil)

	// on a failed write nothing was applied, discard as for Abort
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false

	return err
}

// Abort - discard all pending writes
func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
