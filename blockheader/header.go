// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/assetregistry/blockdigest"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
)

// key of the single record in the header pool
var currentKey = []byte("current")

// packed record: parent(32) height(8) txIndex(4)
const (
	heightOffset  = blockdigest.Length
	txIndexOffset = heightOffset + 8
	packedLength  = txIndexOffset + 4
)

// Context - the environment an operation executes in
type Context struct {
	ParentHash blockdigest.Digest `json:"parentHash"`
	Height     uint64             `json:"height"`
	TxIndex    uint32             `json:"txIndex"`
}

// Header - access to the block context for an operation
type Header interface {
	Get() (Context, error)
	NextTransaction(storage.Transaction) (Context, error)
	Seal(storage.Transaction) (Context, error)
}

type header struct{}

// New - the block context backed by the header pool
func New() Header {
	return header{}
}

func (header) Get() (Context, error) {
	return Get()
}

func (header) NextTransaction(trx storage.Transaction) (Context, error) {
	return NextTransaction(trx)
}

func (header) Seal(trx storage.Transaction) (Context, error) {
	return Seal(trx)
}

// Pack - the binary form of a context
func (c Context) Pack() []byte {
	buffer := make([]byte, packedLength)
	copy(buffer, c.ParentHash[:])
	binary.BigEndian.PutUint64(buffer[heightOffset:], c.Height)
	binary.BigEndian.PutUint32(buffer[txIndexOffset:], c.TxIndex)
	return buffer
}

// Unpack - context from its binary form
func Unpack(buffer []byte) (Context, error) {
	if packedLength != len(buffer) {
		return Context{}, fault.ErrInvalidHeaderRecord
	}
	c := Context{
		Height:  binary.BigEndian.Uint64(buffer[heightOffset:]),
		TxIndex: binary.BigEndian.Uint32(buffer[txIndexOffset:]),
	}
	err := blockdigest.DigestFromBytes(&c.ParentHash, buffer[:heightOffset])
	return c, err
}

// Get - the committed context
//
// before any block is sealed this is the zero context
func Get() (Context, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return Context{}, fault.ErrNotInitialised
	}
	return get(storage.Pool.Header)
}

// NextTransaction - context for the operation running in trx
//
// the transaction index advances inside trx so an aborted operation
// does not consume an index
func NextTransaction(trx storage.Transaction) (Context, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return Context{}, fault.ErrNotInitialised
	}

	current, err := getTrx(trx)
	if nil != err {
		return Context{}, err
	}

	if math.MaxUint32 == current.TxIndex {
		return Context{}, fault.ErrTooManyTransactions
	}

	next := current
	next.TxIndex += 1
	trx.Put(storage.Pool.Header, currentKey, next.Pack())

	return current, nil
}

// Seal - close the current block and start the next one
func Seal(trx storage.Transaction) (Context, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return Context{}, fault.ErrNotInitialised
	}

	current, err := getTrx(trx)
	if nil != err {
		return Context{}, err
	}

	next := Context{
		ParentHash: blockdigest.NewDigest(current.Pack()),
		Height:     current.Height + 1,
		TxIndex:    0,
	}
	trx.Put(storage.Pool.Header, currentKey, next.Pack())

	globalData.log.Debugf("sealed block: %d  digest: %v", current.Height, next.ParentHash)

	return next, nil
}

func get(pool storage.Handle) (Context, error) {
	buffer := pool.Get(currentKey)
	if nil == buffer {
		return Context{}, nil
	}
	return Unpack(buffer)
}

func getTrx(trx storage.Transaction) (Context, error) {
	buffer := trx.Get(storage.Pool.Header, currentKey)
	if nil == buffer {
		return Context{}, nil
	}
	return Unpack(buffer)
}
