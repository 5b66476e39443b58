// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/dispatch"
)

func runAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := parseIdentifier(c.String("id"))
	if nil != err {
		return err
	}

	arguments := dispatch.AssetArguments{
		Id: id,
	}
	var reply dispatch.AssetReply
	if err := m.rpc.Asset(&arguments, &reply); nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := parseAccount("owner", c.String("owner"))
	if nil != err {
		return err
	}

	arguments := dispatch.OwnedArguments{
		Owner: owner,
	}
	var reply dispatch.OwnedReply
	if err := m.rpc.Owned(&arguments, &reply); nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
