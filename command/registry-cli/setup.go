// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/background"
	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/configuration"
	"github.com/bitmark-inc/assetregistry/dispatch"
	"github.com/bitmark-inc/assetregistry/identifier"
	"github.com/bitmark-inc/assetregistry/ledger"
	"github.com/bitmark-inc/assetregistry/messagebus"
	"github.com/bitmark-inc/assetregistry/registry"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

type metadata struct {
	config   *configuration.Configuration
	log      *logger.L
	registry *registry.Registry
	rpc      *dispatch.Registry
	events   *background.T
	modified bool
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// bring up logging, storage, block context and registry in order
func open(file string, verbose bool, w io.Writer, e io.Writer) (*metadata, error) {

	if verbose {
		fmt.Fprintf(e, "reading config file: %s\n", file)
	}

	config, err := configuration.GetConfiguration(file)
	if nil != err {
		return nil, err
	}

	if err := logger.Initialise(config.LoggerConfig()); nil != err {
		return nil, err
	}
	log := logger.New("main")
	log.Infof("version: %s", buildVersion)

	ok := false
	defer func() {
		if !ok {
			blockheader.Finalise()
			storage.Finalise()
			logger.Finalise()
		}
	}()

	if verbose {
		fmt.Fprintf(e, "database: %s\n", config.DatabasePath())
	}

	if err := storage.Initialise(config.DatabasePath(), storage.ReadWrite); nil != err {
		log.Criticalf("storage initialise error: %s", err)
		return nil, err
	}

	if err := blockheader.Initialise(); nil != err {
		log.Criticalf("block header initialise error: %s", err)
		return nil, err
	}

	r, err := registry.New(
		config.RegistryConfig(),
		ledger.New(storage.Pool.Balances, config.ExistentialDeposit),
		blockheader.New(),
		registry.NewBusEmitter(messagebus.Bus.Events),
	)
	if nil != err {
		log.Criticalf("registry initialise error: %s", err)
		return nil, err
	}

	processes := background.Processes{
		registry.NewEventLog(messagebus.Bus.Events),
	}

	ok = true
	return &metadata{
		config:   config,
		log:      log,
		registry: r,
		rpc:      dispatch.New(logger.New("dispatch"), r),
		events:   background.Start(processes, nil),
		verbose:  verbose,
		e:        e,
		w:        w,
	}, nil
}

// seal the block if anything was written then shut down in reverse order
func (m *metadata) close() error {
	var err error
	if m.modified {
		ctx, sealErr := m.registry.Seal()
		if nil != sealErr {
			m.log.Errorf("seal error: %s", sealErr)
			err = sealErr
		} else {
			m.log.Infof("sealed block: %d  parent: %v", ctx.Height, ctx.ParentHash)
			if m.verbose {
				fmt.Fprintf(m.e, "block height: %d\n", ctx.Height)
			}
		}
	}

	m.events.Stop()

	m.log.Infof("statistics: %v", m.registry.Statistics())

	blockheader.Finalise()
	storage.Finalise()
	logger.Finalise()
	return err
}

// prefix forcing a local name
const namePrefix = "name:"

// accept either a base58 account or a local name
//
// anything decoding to at least a full key must be a valid address so a
// mistyped address is never taken for a name
func parseAccount(name string, s string) (account.Account, error) {
	if "" == s {
		return account.Account{}, fmt.Errorf("%s is required", name)
	}
	if strings.HasPrefix(s, namePrefix) {
		n := strings.TrimPrefix(s, namePrefix)
		if "" == n {
			return account.Account{}, fmt.Errorf("%s is required", name)
		}
		return account.FromName(n), nil
	}

	decoded, err := base58.Decode(s)
	if nil != err || len(decoded) < account.KeyLength {
		return account.FromName(s), nil
	}
	return account.FromBase58(s)
}

func parseIdentifier(s string) (identifier.Identifier, error) {
	if "" == s {
		return identifier.Identifier{}, fmt.Errorf("asset id is required")
	}
	return identifier.FromString(s)
}
