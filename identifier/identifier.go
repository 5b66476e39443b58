// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - 256 bit asset identifiers
//
// an identifier is derived deterministically from the block context
// and the global asset counter
package identifier

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/fault"
)

// Length - number of bytes in an identifier
const Length = blake2b.Size256

// Identifier - an asset identifier
type Identifier [Length]byte

// Generate - identifier for the asset minted with the given counter value
//
// BLAKE2b-256(parentHash ‖ height ‖ txIndex ‖ count) all big endian
func Generate(ctx blockheader.Context, count uint64) Identifier {
	buffer := make([]byte, 0, len(ctx.ParentHash)+8+4+8)
	buffer = append(buffer, ctx.ParentHash[:]...)
	buffer = appendUint64(buffer, ctx.Height)
	buffer = appendUint32(buffer, ctx.TxIndex)
	buffer = appendUint64(buffer, count)
	return Identifier(blake2b.Sum256(buffer))
}

func appendUint64(buffer []byte, n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return append(buffer, b...)
}

func appendUint32(buffer []byte, n uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, n)
	return append(buffer, b...)
}

// FromBytes - convert and validate a binary identifier
func FromBytes(buffer []byte) (Identifier, error) {
	id := Identifier{}
	if Length != len(buffer) {
		return id, fault.ErrInvalidIdentifier
	}
	copy(id[:], buffer)
	return id, nil
}

// FromString - convert hex text to an identifier
func FromString(s string) (Identifier, error) {
	id := Identifier{}
	err := id.UnmarshalText([]byte(s))
	return id, err
}

// Bytes - the identifier as a byte slice
func (id Identifier) Bytes() []byte {
	return id[:]
}

// String - hex representation for %s
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - representation for %#v
func (id Identifier) GoString() string {
	return "<Identifier:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert identifier to hex text
func (id Identifier) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to an identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.ErrInvalidIdentifier
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.ErrInvalidIdentifier
	}
	copy(id[:], buffer)
	return nil
}
