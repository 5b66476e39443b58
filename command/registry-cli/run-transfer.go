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

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := parseAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}
	receiver, err := parseAccount("receiver", c.String("receiver"))
	if nil != err {
		return err
	}
	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %v\n", caller)
		fmt.Fprintf(m.e, "receiver: %v\n", receiver)
		fmt.Fprintf(m.e, "id: %v\n", id)
	}

	arguments := dispatch.TransferArguments{
		Caller: caller,
		To:     receiver,
		Id:     id,
	}
	var reply dispatch.TransferReply
	if err := m.rpc.Transfer(&arguments, &reply); nil != err {
		return err
	}
	m.modified = true

	printJson(m.w, arguments)
	return nil
}
