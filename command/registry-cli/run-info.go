// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/blockdigest"
	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/registry"
	"github.com/bitmark-inc/assetregistry/version"
)

type infoReply struct {
	Version    string             `json:"version"`
	Height     uint64             `json:"height"`
	TxIndex    uint32             `json:"txIndex"`
	ParentHash blockdigest.Digest `json:"parentHash"`
	Assets     uint64             `json:"assets"`
	Limits     registry.Config    `json:"limits"`
	Database   string             `json:"database"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ctx, err := blockheader.Get()
	if nil != err {
		return err
	}

	printJson(m.w, infoReply{
		Version:    version.Version,
		Height:     ctx.Height,
		TxIndex:    ctx.TxIndex,
		ParentHash: ctx.ParentHash,
		Assets:     m.registry.Count(),
		Limits:     m.registry.Config(),
		Database:   m.config.DatabasePath(),
	})
	return nil
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if err := m.registry.Check(); nil != err {
		return err
	}

	fmt.Fprintf(m.w, "ok: %d assets\n", m.registry.Count())
	return nil
}
