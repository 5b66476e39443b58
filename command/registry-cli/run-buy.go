// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/dispatch"
)

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := parseAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}
	if !c.IsSet("max-price") {
		return fmt.Errorf("max-price is required")
	}
	maxPrice := c.Uint64("max-price")

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %v\n", caller)
		fmt.Fprintf(m.e, "id: %v\n", id)
		fmt.Fprintf(m.e, "max price: %d\n", maxPrice)
	}

	arguments := dispatch.BuyArguments{
		Caller:   caller,
		Id:       id,
		MaxPrice: maxPrice,
	}
	var reply dispatch.BuyReply
	if err := m.rpc.Buy(&arguments, &reply); nil != err {
		return err
	}
	m.modified = true

	printJson(m.w, arguments)
	return nil
}
