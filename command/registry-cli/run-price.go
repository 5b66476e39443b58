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

func runPrice(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := parseAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}

	delist := c.Bool("delist")
	if delist == c.IsSet("amount") {
		return fmt.Errorf("exactly one of amount or delist is required")
	}

	var price *uint64
	if !delist {
		amount := c.Uint64("amount")
		price = &amount
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %v\n", caller)
		fmt.Fprintf(m.e, "id: %v\n", id)
		if nil != price {
			fmt.Fprintf(m.e, "price: %d\n", *price)
		} else {
			fmt.Fprintf(m.e, "delist\n")
		}
	}

	arguments := dispatch.SetPriceArguments{
		Caller: caller,
		Id:     id,
		Price:  price,
	}
	var reply dispatch.SetPriceReply
	if err := m.rpc.SetPrice(&arguments, &reply); nil != err {
		return err
	}
	m.modified = true

	printJson(m.w, arguments)
	return nil
}
