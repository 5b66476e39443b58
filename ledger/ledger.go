// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - fungible balances used to pay for assets
//
// an account must always keep at least the existential deposit; a
// transfer that would leave the sender below it is refused rather than
// removing the account
package ledger

import (
	"math"

	"github.com/bitmark-inc/assetregistry/account"
	"github.com/bitmark-inc/assetregistry/fault"
	"github.com/bitmark-inc/assetregistry/storage"
	"github.com/bitmark-inc/logger"
)

// Ledger - funds movement used by a buy
type Ledger interface {
	Balance(storage.Reader, account.Account) uint64
	Transfer(storage.Transaction, account.Account, account.Account, uint64) error
	Deposit(storage.Transaction, account.Account, uint64) error
}

type ledger struct {
	log                *logger.L
	pool               *storage.PoolHandle
	existentialDeposit uint64
}

// New - ledger over a balance pool
func New(pool *storage.PoolHandle, existentialDeposit uint64) Ledger {
	return &ledger{
		log:                logger.New("ledger"),
		pool:               pool,
		existentialDeposit: existentialDeposit,
	}
}

// Balance - current balance, zero for unknown accounts
func (l *ledger) Balance(reader storage.Reader, a account.Account) uint64 {
	n, _ := reader.GetN(l.pool, a[:])
	return n
}

// Transfer - move funds from one account to another
//
// nothing is written unless every check passes
func (l *ledger) Transfer(trx storage.Transaction, from account.Account, to account.Account, amount uint64) error {
	if 0 == amount || from == to {
		return nil
	}

	fromBalance := l.Balance(trx, from)
	if fromBalance < amount {
		return fault.ErrInsufficientFunds
	}

	remainder := fromBalance - amount
	if remainder < l.existentialDeposit || 0 == remainder {
		return fault.ErrWouldReapAccount
	}

	toBalance := l.Balance(trx, to)
	if toBalance > math.MaxUint64-amount {
		return fault.ErrBalanceOverflow
	}
	if toBalance+amount < l.existentialDeposit {
		return fault.ErrBelowExistentialDeposit
	}

	trx.PutN(l.pool, from[:], remainder)
	trx.PutN(l.pool, to[:], toBalance+amount)

	l.log.Debugf("transfer: %d  from: %v  to: %v", amount, from, to)
	return nil
}

// Deposit - credit an account with new funds
func (l *ledger) Deposit(trx storage.Transaction, to account.Account, amount uint64) error {
	if 0 == amount {
		return nil
	}

	balance := l.Balance(trx, to)
	if balance > math.MaxUint64-amount {
		return fault.ErrBalanceOverflow
	}
	if balance+amount < l.existentialDeposit {
		return fault.ErrBelowExistentialDeposit
	}

	trx.PutN(l.pool, to[:], balance+amount)

	l.log.Debugf("deposit: %d  to: %v", amount, to)
	return nil
}
