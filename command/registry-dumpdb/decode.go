// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/asset"
	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/assetregistry/ownership"
)

// render a record of a known pool as text lines
func decodeRecord(tag string, key []byte, value []byte) []string {
	switch tag {

	case "A":
		id, err := identifier.FromBytes(key)
		if nil != err {
			return []string{fmt.Sprintf("bad key: %s", err)}
		}
		a, err := asset.Unpack(id, value)
		if nil != err {
			return []string{fmt.Sprintf("bad asset: %s", err)}
		}
		lines := []string{
			fmt.Sprintf("fingerprint: %v", a.Fingerprint),
			fmt.Sprintf("owner: %v", a.Owner),
		}
		if a.ForSale() {
			lines = append(lines, fmt.Sprintf("price: %d", *a.Price))
		} else {
			lines = append(lines, "price: not for sale")
		}
		return lines

	case "B":
		a, err := account.FromBytes(key)
		if nil != err || 8 != len(value) {
			return []string{"bad balance record"}
		}
		return []string{fmt.Sprintf("account: %v  balance: %d", a, binary.BigEndian.Uint64(value))}

	case "C":
		if 8 != len(value) {
			return []string{"bad counter record"}
		}
		return []string{fmt.Sprintf("%s: %d", key, binary.BigEndian.Uint64(value))}

	case "H":
		ctx, err := blockheader.Unpack(value)
		if nil != err {
			return []string{fmt.Sprintf("bad header: %s", err)}
		}
		return []string{
			fmt.Sprintf("height: %d  tx index: %d", ctx.Height, ctx.TxIndex),
			fmt.Sprintf("parent: %v", ctx.ParentHash),
		}

	case "L":
		owner, err := account.FromBytes(key)
		if nil != err {
			return []string{fmt.Sprintf("bad key: %s", err)}
		}
		list, err := ownership.Unpack(value)
		if nil != err {
			return []string{fmt.Sprintf("bad inventory: %s", err)}
		}
		lines := []string{fmt.Sprintf("owner: %v  count: %d", owner, len(list))}
		for j, id := range list {
			lines = append(lines, fmt.Sprintf("  [%d] %v", j, id))
		}
		return lines
	}
	return nil
}
