// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/assetregistry/blockheader"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

const (
	databaseFileName = "test.leveldb"
	logFileName      = "test.log"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(logFileName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()

	logger.Initialise(logger.Configuration{
		Directory: ".",
		File:      logFileName,
		Size:      50000,
		Count:     10,
	})

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = blockheader.Initialise()
	if nil != err {
		t.Fatalf("initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	err := blockheader.Finalise()
	if nil != err {
		t.Fatalf("finalise error: %s", err)
	}
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}
