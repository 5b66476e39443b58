// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/assetregistry/fault"
)

// miscellaneous constants
const (
	// KeyLength - number of bytes in an account key
	KeyLength = 32

	checksumLength = 4
)

// Account - identity of a caller or owner
//
// a value type so that it can be compared with == and used as a map key
type Account [KeyLength]byte

// FromBytes - convert a raw key to an account
func FromBytes(buffer []byte) (Account, error) {
	a := Account{}
	if KeyLength != len(buffer) {
		return a, fault.ErrInvalidAccount
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the checksummed base58 text form
func FromBase58(s string) (Account, error) {
	a := Account{}

	decoded, err := base58.Decode(s)
	if nil != err {
		return a, fault.ErrInvalidAccount
	}
	if KeyLength+checksumLength != len(decoded) {
		return a, fault.ErrInvalidAccount
	}

	checksum := sha3.Sum256(decoded[:KeyLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[KeyLength:]) {
		return a, fault.ErrInvalidAccount
	}
	copy(a[:], decoded[:KeyLength])
	return a, nil
}

// FromName - deterministic account for a name, local chains and tests only
func FromName(name string) Account {
	return Account(sha3.Sum256([]byte("account:" + name)))
}

// Bytes - key as a byte slice for storage keys
func (a Account) Bytes() []byte {
	return a[:]
}

// IsZero - true for the unset account
func (a Account) IsZero() bool {
	return a == Account{}
}

// String - checksummed base58 form
func (a Account) String() string {
	checksum := sha3.Sum256(a[:])
	buffer := make([]byte, 0, KeyLength+checksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (a Account) GoString() string {
	return "<account:" + a.String() + ">"
}

// MarshalText - account to base58 text
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - base58 text to account
func (a *Account) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
