// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/dispatch"
	"github.com/bitmark-inc/assetregistry/identifier"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := parseAccount("caller", c.String("caller"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %v\n", caller)
	}

	arguments := dispatch.CreateArguments{
		Caller: caller,
	}
	var reply dispatch.CreateReply
	if err := m.rpc.Create(&arguments, &reply); nil != err {
		return err
	}
	m.modified = true

	printJson(m.w, reply)
	return nil
}

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := parseAccount("owner", c.String("owner"))
	if nil != err {
		return err
	}

	var fingerprint *identifier.Identifier
	if f := c.String("fingerprint"); "" != f {
		fp, err := identifier.FromString(f)
		if nil != err {
			return err
		}
		fingerprint = &fp
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %v\n", owner)
		if nil != fingerprint {
			fmt.Fprintf(m.e, "fingerprint: %v\n", fingerprint)
		}
	}

	id, err := m.registry.Mint(owner, fingerprint)
	if nil != err {
		return err
	}
	m.modified = true

	printJson(m.w, dispatch.CreateReply{Id: id})
	return nil
}
