// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetregistry/version"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var buildVersion = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "registry-cli"
	app.Usage = "operate a local asset registry"
	app.Version = version.Version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "registry.conf",
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "create a new asset owned by the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, C",
					Value: "",
					Usage: "*owner of the new asset `ACCOUNT` (base58 or name:NAME)",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "mint",
			Usage:     "mint an asset with an explicit fingerprint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner of the new asset `ACCOUNT` (base58 or name:NAME)",
				},
				cli.StringFlag{
					Name:  "fingerprint, f",
					Value: "",
					Usage: " 64 hex digit fingerprint `HEX`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an asset to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, C",
					Value: "",
					Usage: "*current owner `ACCOUNT` (base58 or name:NAME)",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the asset `ACCOUNT` (base58 or name:NAME)",
				},
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*asset identifier `HEX`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "price",
			Usage:     "list an asset for sale or remove the listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, C",
					Value: "",
					Usage: "*current owner `ACCOUNT` (base58 or name:NAME)",
				},
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*asset identifier `HEX`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: " asking price `AMOUNT`",
				},
				cli.BoolFlag{
					Name:  "delist, d",
					Usage: " remove the listing",
				},
			},
			Action: runPrice,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "caller, C",
					Value: "",
					Usage: "*buying account `ACCOUNT` (base58 or name:NAME)",
				},
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*asset identifier `HEX`",
				},
				cli.Uint64Flag{
					Name:  "max-price, m",
					Value: 0,
					Usage: "*most the buyer will pay `AMOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "fund",
			Usage:     "credit an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: "*account to credit `ACCOUNT` (base58 or name:NAME)",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to add `AMOUNT`",
				},
			},
			Action: runFund,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: "*account to query `ACCOUNT` (base58 or name:NAME)",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "asset",
			Usage:     "display a single asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*asset identifier `HEX`",
				},
			},
			Action: runAsset,
		},
		{
			Name:      "owned",
			Usage:     "list the assets held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account to query `ACCOUNT` (base58 or name:NAME)",
				},
			},
			Action: runOwned,
		},
		{
			Name:   "info",
			Usage:  "display registry counters and block context",
			Action: runInfo,
		},
		{
			Name:   "check",
			Usage:  "verify the asset table against the ownership index",
			Action: runCheck,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s (%s)\n", version.Version, buildVersion)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		// to suppress opening the database for certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version":
			return nil
		}

		m, err := open(c.GlobalString("config"), c.GlobalBool("verbose"), c.App.Writer, c.App.ErrWriter)
		if nil != err {
			return err
		}
		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		return m.close()
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
