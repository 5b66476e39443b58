// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"os"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/ledger"
	"github.com/bitmark-inc/assetregistry/registry"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

const (
	databaseFileName   = "test.leveldb"
	logFileName        = "test.log"
	existentialDeposit = 10
	maxOwned           = 3
)

var (
	alice = account.FromName("alice")
	bob   = account.FromName("bob")
	carol = account.FromName("carol")
)

// both *testing.T and *rapid.T
type fataler interface {
	Fatalf(format string, args ...interface{})
}

// collects emitted events
type recorder struct {
	events []registry.Event
}

func (r *recorder) Emit(e registry.Event) {
	r.events = append(r.events, e)
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(logFileName)
}

func openStorage(t fataler) {
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = blockheader.Initialise()
	if nil != err {
		t.Fatalf("blockheader initialise error: %s", err)
	}
}

func closeStorage() {
	blockheader.Finalise()
	storage.Finalise()
}

// configure for testing
func setup(t fataler) {
	removeFiles()

	logger.Initialise(logger.Configuration{
		Directory: ".",
		File:      logFileName,
		Size:      50000,
		Count:     10,
	})

	openStorage(t)
}

// post test cleanup
func teardown() {
	closeStorage()
	logger.Finalise()
	removeFiles()
}

// registry with the real ledger and block context
func newRegistry(t fataler, config registry.Config) (*registry.Registry, *recorder) {
	rec := &recorder{}
	r, err := registry.New(config, ledger.New(storage.Pool.Balances, existentialDeposit), blockheader.New(), rec)
	if nil != err {
		t.Fatalf("registry error: %s", err)
	}
	return r, rec
}

func price(n uint64) *uint64 {
	return &n
}
