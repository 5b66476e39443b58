// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/account"
)

type balanceReply struct {
	Account account.Account `json:"account"`
	Balance uint64          `json:"balance"`
}

func runFund(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := parseAccount("account", c.String("account"))
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("invalid amount: %d", amount)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %v\n", a)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	if err := m.registry.Deposit(a, amount); nil != err {
		return err
	}
	m.modified = true

	printJson(m.w, balanceReply{
		Account: a,
		Balance: m.registry.Balance(a),
	})
	return nil
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := parseAccount("account", c.String("account"))
	if nil != err {
		return err
	}

	printJson(m.w, balanceReply{
		Account: a,
		Balance: m.registry.Balance(a),
	})
	return nil
}
